// Package testhelpers provides throwaway git repositories for tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir       string
	RemoteDir string // path of the bare "origin" repository, if any
}

// gitRepoOptions holds options for creating a GitRepo.
type gitRepoOptions struct {
	branch        string
	withoutOrigin bool
}

// GitRepoOption configures repository creation.
type GitRepoOption func(*gitRepoOptions)

// WithBranch sets the initial branch name (defaults to main).
func WithBranch(branch string) GitRepoOption {
	return func(o *gitRepoOptions) { o.branch = branch }
}

// WithoutOrigin skips creating the bare origin remote.
func WithoutOrigin() GitRepoOption {
	return func(o *gitRepoOptions) { o.withoutOrigin = true }
}

// NewGitRepo initializes a new Git repository in the specified directory
// using 'git init', with a bare sibling repository wired up as origin.
func NewGitRepo(dir string, opts ...GitRepoOption) (*GitRepo, error) {
	options := &gitRepoOptions{branch: "main"}
	for _, opt := range opts {
		opt(options)
	}

	repo := &GitRepo{Dir: dir}

	// Initialize with optimized config, avoiding the global git config
	cmd := exec.Command("git", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", options.branch)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	// Configure Git user (required for commits)
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	if !options.withoutOrigin {
		remoteDir := dir + ".origin.git"
		cmd := exec.Command("git", "init", "--bare", remoteDir)
		cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
		if err := cmd.Run(); err != nil {
			return nil, fmt.Errorf("failed to init bare origin: %w", err)
		}
		if err := repo.RunGitCommand("remote", "add", "origin", remoteDir); err != nil {
			return nil, err
		}
		repo.RemoteDir = remoteDir
	}

	return repo, nil
}

// RunGitCommand executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global config.
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	return cmd.Run()
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChange writes content to a file in the work tree.
func (r *GitRepo) CreateChange(fileName, content string) error {
	return os.WriteFile(filepath.Join(r.Dir, fileName), []byte(content), 0644)
}

// CommitChange writes a file, stages it, and commits it with the given message.
func (r *GitRepo) CommitChange(fileName, content, message string) error {
	if err := r.CreateChange(fileName, content); err != nil {
		return err
	}
	if err := r.RunGitCommand("add", "-A"); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "-m", message)
}

// LastCommitMessage returns the subject of the most recent commit.
func (r *GitRepo) LastCommitMessage() (string, error) {
	return r.RunGitCommandAndGetOutput("log", "-1", "--pretty=%s")
}

// CurrentBranch returns the checked-out branch name.
func (r *GitRepo) CurrentBranch() (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "HEAD")
}

// RemoteBranchSHA returns the SHA the bare origin has for the branch, or
// an error when the branch was never pushed.
func (r *GitRepo) RemoteBranchSHA(branch string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "refs/heads/"+branch)
	cmd.Dir = r.RemoteDir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("branch %s not on remote: %w", branch, err)
	}
	return strings.TrimSpace(string(output)), nil
}
