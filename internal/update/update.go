package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
)

// Repo is the GitHub slug nexusdesk releases are published under.
const Repo = "justinpbarnett/nexusdesk"

const (
	checkTimeout = 10 * time.Second
	applyTimeout = 2 * time.Minute
)

// ErrDevBuild is returned by Apply for builds without a release version.
var ErrDevBuild = errors.New("cannot update a development build, install from a release first")

// Release holds information about an available update.
type Release struct {
	Version      string
	URL          string
	ReleaseNotes string
}

// latestFunc looks up the newest published release. found is false when the
// repository has no release for this platform.
type latestFunc func(ctx context.Context, repo string) (rel *Release, found bool, err error)

// IsDevBuild reports whether v carries no release version.
func IsDevBuild(v string) bool {
	return v == "" || v == "dev"
}

// CheckForUpdate queries GitHub Releases for a version newer than current.
// It returns nil for development builds and unparseable versions.
func CheckForUpdate(ctx context.Context, current, repo string) (*Release, error) {
	return checkWith(ctx, current, repo, githubLatest)
}

func checkWith(ctx context.Context, current, repo string, latest latestFunc) (*Release, error) {
	if IsDevBuild(current) {
		return nil, nil
	}
	cur, err := parseSemver(current)
	if err != nil {
		return nil, nil // dirty or hand-rolled build, nothing to compare against
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	rel, found, err := latest(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("detect latest release: %w", err)
	}
	if !found || rel == nil {
		return nil, nil
	}

	lv, err := parseSemver(rel.Version)
	if err != nil || !lv.GreaterThan(cur) {
		return nil, nil
	}
	return rel, nil
}

// Apply downloads the latest release binary and replaces the running
// executable.
func Apply(ctx context.Context, current, repo string) (*Release, error) {
	if IsDevBuild(current) {
		return nil, ErrDevBuild
	}

	updater, err := newUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, applyTimeout)
	defer cancel()

	rel, err := updater.UpdateSelf(ctx, strings.TrimPrefix(current, "v"), selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return &Release{
		Version:      rel.Version(),
		URL:          rel.URL,
		ReleaseNotes: rel.ReleaseNotes,
	}, nil
}

// Notice is the one-line message shown when rel is available.
func Notice(rel *Release) string {
	if rel == nil {
		return ""
	}
	return fmt.Sprintf("Update available: v%s. Run \"nexusdesk update\" to install.", strings.TrimPrefix(rel.Version, "v"))
}

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

func githubLatest(ctx context.Context, repo string) (*Release, bool, error) {
	updater, err := newUpdater()
	if err != nil {
		return nil, false, err
	}
	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil || !found {
		return nil, found, err
	}
	return &Release{
		Version:      latest.Version(),
		URL:          latest.URL,
		ReleaseNotes: latest.ReleaseNotes,
	}, true, nil
}

// CompareVersions compares two semver strings.
// Returns -1 if current < latest, 0 if equal, 1 if current > latest.
// Unparseable versions sort below any valid version.
func CompareVersions(current, latest string) int {
	cv, errC := parseSemver(current)
	lv, errL := parseSemver(latest)

	switch {
	case errC != nil && errL != nil:
		return 0
	case errC != nil:
		return -1
	case errL != nil:
		return 1
	}
	return cv.Compare(lv)
}

// parseSemver strips a leading "v"; git-describe suffixes such as
// "0.1.0-3-gabcdef" parse as prereleases.
func parseSemver(s string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
