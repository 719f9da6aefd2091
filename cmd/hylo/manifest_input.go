package main

import (
	"errors"
	"fmt"

	"hylo/internal/project"
)

const noManifestMessage = "no hylo.toml found\nplease pass a path explicitly, e.g.:\n  hylo parse path/to/script.hy"

func inputFromManifest() (inputSource, error) {
	m, err := project.Load(".")
	if err != nil {
		if errors.Is(err, project.ErrNoManifest) {
			return inputSource{}, errors.New(noManifestMessage)
		}
		return inputSource{}, err
	}
	path, isDir, err := m.MainPath()
	if err != nil {
		return inputSource{}, err
	}
	return inputSource{path: path, isDir: isDir}, nil
}

// applyManifestDefaults fills flags the user did not set from [check].
func applyManifestDefaults(cfg *cliConfig, changed func(string) bool) error {
	m, err := project.Load(".")
	if errors.Is(err, project.ErrNoManifest) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	check := m.Config.Check
	if !changed("jobs") && check.Jobs > 0 {
		cfg.jobs = check.Jobs
	}
	if !changed("max-diagnostics") && check.MaxDiagnostics > 0 {
		cfg.maxDiagnostics = check.MaxDiagnostics
	}
	if !changed("cache") && check.Cache {
		cfg.cache = true
	}
	return nil
}
