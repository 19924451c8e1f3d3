// Package git materializes a single ref of a remote repository into a local
// working tree.
//
// Local repository state is managed with go-git: Init and Open create or open
// standard and bare repositories on a billy filesystem, AddRemote and
// ListRemotes manage remotes, HasTag checks for a tag without touching the
// network, and EnableSparse configures sparse checkout before anything is
// fetched.
//
// Network operations go through the RefOperations interface. The default
// implementation, CLI, shells out to the git binary so that the user's
// credential helpers, SSH configuration and proxy settings apply unchanged:
//
//	git fetch -u --depth=1 origin 'refs/*/<ref>:refs/*/<ref>' <ref>
//	git checkout --quiet <ref>
//	git ls-remote <url> HEAD
//
// CheckoutRef combines the two:
//
//	err := git.CheckoutRef(ctx, git.CheckoutOptions{
//	    Path:    "/tmp/work/checkout",
//	    Source:  "https://github.com/org/charts",
//	    Ref:     "v1.2.0",
//	    SubPath: "charts/app",
//	    Sparse:  true,
//	})
//
// Errors returned by this package are platform errors from the errors
// package. go-git errors are classified into codes such as NOT_FOUND and
// ALREADY_EXISTS; CLI failures are classified from git's stderr.
package git
