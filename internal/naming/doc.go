// Package naming negotiates the name of the add-on being generated. A name
// given on the command line is tried first; otherwise, and whenever the
// candidate collides with an existing add-on, the user is asked again.
package naming
