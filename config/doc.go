// Package config holds the runtime configuration of helm-git.
//
// Config is a plain value read from the environment by the command line
// parser (see the kong struct tags). It is never modified after parsing and
// is passed by value to the components that need it.
package config
