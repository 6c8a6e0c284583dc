package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethan309/create-local-addon/internal/boilerplate"
	"github.com/ethan309/create-local-addon/internal/branding"
	"github.com/ethan309/create-local-addon/internal/host"
	"github.com/ethan309/create-local-addon/internal/manifest"
	"github.com/ethan309/create-local-addon/internal/naming"
	"github.com/ethan309/create-local-addon/internal/report"
	"github.com/hashicorp/go-hclog"
)

// Materializer turns the boilerplate source into destRoot/name.
type Materializer interface {
	Materialize(ctx context.Context, src boilerplate.Source, destRoot, name string) (string, error)
}

// LinkFunc creates a directory symlink at link pointing to target.
type LinkFunc func(target, link string) error

// Pipeline holds the collaborators of a run. All fields are required except
// Logger, which defaults to a null logger.
type Pipeline struct {
	Registry    host.Registry
	Source      boilerplate.Source
	Unpacker    Materializer
	Prompter    naming.Prompter
	Enabler     host.Enabler
	Link        LinkFunc
	Reporter    *report.Reporter
	Logger      hclog.Logger
	WorkDir     string
	DefaultName string
}

// Result summarizes a successful run.
type Result struct {
	Variant host.Variant
	Name    string
	// Dir is the generated add-on directory.
	Dir string
	// LinkPath is the symlink created in the add-ons directory, if any.
	LinkPath string
	Enabled  bool
	Warnings []string
}

// Run executes every stage in order.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	log := p.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}
	r := p.Reporter
	res := &Result{}

	// Probing.
	r.Info("Checking on your existing Local installations and add-ons...")
	variant, err := p.Registry.Probe(opts.PreferBeta)
	if err != nil {
		r.Error("No installations of Local found! Please install Local at %s to create an add-on.", branding.InstallURL())
		return nil, fail(StageProbing, ErrSetup, err)
	}
	res.Variant = variant
	log.Debug("selected variant", "variant", variant.String(), "dir", p.Registry.Dir(variant))

	// Enumerating degrades to an empty set.
	existing, err := p.Registry.ExistingAddons(variant)
	if err != nil {
		log.Debug("enumerating add-ons failed", "error", err)
		r.Warn("There was a problem identifying your existing %s add-ons.", variant)
		res.Warnings = append(res.Warnings, err.Error())
		existing = host.AddonSet{}
	}
	log.Debug("existing add-ons", "names", existing.Names())
	r.Done("Everything looks good! Let's start making that new add-on...")

	// Negotiating.
	r.Prompts("We need a bit of information before we can create your add-on.")
	name, err := naming.Negotiate(ctx, p.Prompter, existing, opts.ExplicitName, p.DefaultName)
	if err != nil {
		r.Error("There was a problem reading the name of your add-on.")
		return nil, fail(StageNegotiating, ErrPrompt, err)
	}
	res.Name = name

	// Fetching, unpacking, renaming.
	r.Info("Pulling down the boilerplate %s add-on to set up...", variant)
	destRoot := p.WorkDir
	if opts.PlaceDirectly {
		destRoot = p.Registry.AddonsDir(variant)
		if err := os.MkdirAll(destRoot, 0755); err != nil {
			r.Error("There was a problem setting up the %s add-on directory.", variant)
			return nil, fail(StageFetching, ErrLayout, err)
		}
	}
	log.Debug("destination root", "path", destRoot, "place_directly", opts.PlaceDirectly)

	dir, err := p.Unpacker.Materialize(ctx, p.Source, destRoot, name)
	if err != nil {
		return nil, p.unpackFailure(variant, err)
	}
	res.Dir = dir
	r.Done("Success! Your %s add-on directory has been created.", variant)

	for _, w := range manifest.Check(dir) {
		r.Warn("%s", w)
		res.Warnings = append(res.Warnings, w)
	}

	r.Info("Setting up your new add-on in the %s application...", variant)

	// Linking.
	if opts.ShouldSymlink() {
		addonsDir := p.Registry.AddonsDir(variant)
		link := filepath.Join(addonsDir, name)
		if err := os.MkdirAll(addonsDir, 0755); err != nil {
			r.Error("There was a problem linking your add-on into %s.", variant)
			return nil, fail(StageLinking, ErrLink, err)
		}
		if err := p.Link(dir, link); err != nil {
			r.Error("There was a problem linking your add-on into %s.", variant)
			return nil, fail(StageLinking, ErrLink, err)
		}
		res.LinkPath = link
		log.Debug("linked add-on", "link", link, "target", dir)
	}

	// Enabling.
	if opts.ShouldEnable() {
		r.Info("Enabling your add-on...")
		if err := p.Enabler.Enable(variant, name); err != nil {
			r.Error("There was a problem enabling your add-on.")
			return nil, fail(StageEnabling, ErrEnable, err)
		}
		res.Enabled = true
	}

	r.Done("Your %s add-on has been created and set up successfully.", variant)
	r.Info("You can find the directory for your newly created add-on at %s", dir)
	return res, nil
}

// unpackFailure reports and classifies a Materialize error.
func (p *Pipeline) unpackFailure(variant host.Variant, err error) error {
	r := p.Reporter
	switch {
	case errors.Is(err, boilerplate.ErrDownload):
		r.Error("There was a problem retrieving the %s add-on boilerplate archive.", variant)
		return fail(StageFetching, ErrNetwork, err)
	case errors.Is(err, boilerplate.ErrOpenArchive):
		r.Error("There was a problem locating the %s add-on boilerplate archive to be unpacked.", variant)
		return fail(StageUnpacking, ErrArchive, err)
	case errors.Is(err, boilerplate.ErrExtract):
		r.Error("There was a problem unpacking the %s add-on boilerplate archive.", variant)
		return fail(StageUnpacking, ErrArchive, err)
	case errors.Is(err, boilerplate.ErrRename):
		r.Error("There was a problem setting up the %s add-on directory.", variant)
		return fail(StageRenaming, ErrLayout, err)
	default:
		r.Error("There was a problem creating the %s add-on directory.", variant)
		return fail(StageUnpacking, ErrArchive, fmt.Errorf("unclassified: %w", err))
	}
}
