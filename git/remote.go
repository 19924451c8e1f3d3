package git

import (
	"github.com/go-git/go-git/v5/config"
)

// ListRemotes returns all configured remotes for this repository.
// Each remote includes its name and configured URLs.
func (r *Repository) ListRemotes() ([]Remote, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, wrapError(err, "failed to list remotes")
	}

	result := make([]Remote, 0, len(remotes))
	for _, remote := range remotes {
		cfg := remote.Config()
		result = append(result, Remote{
			Name: cfg.Name,
			URLs: cfg.URLs,
		})
	}

	return result, nil
}

// AddRemote adds a new remote to the repository configuration.
// The remote name must be unique within the repository.
//
// Returns an error if the remote already exists (ErrAlreadyExists) or if
// the configuration is invalid (ErrInvalidInput).
//
// Example:
//
//	err := repo.AddRemote(git.RemoteOptions{
//	    Name: "origin",
//	    URL:  "https://github.com/org/charts",
//	})
func (r *Repository) AddRemote(opts RemoteOptions) error {
	_, err := r.repo.CreateRemote(&config.RemoteConfig{
		Name: opts.Name,
		URLs: []string{opts.URL},
	})
	if err != nil {
		return wrapError(err, "failed to add remote")
	}

	return nil
}
