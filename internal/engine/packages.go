package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/Fus3n/python-project-manager/internal/journal"
	"github.com/Fus3n/python-project-manager/internal/requirements"
	"github.com/Fus3n/python-project-manager/internal/ui"
)

// Add installs each spec and records it in the manifest, saving after every
// successful item. A failing item is reported and the rest still run.
func (e *Engine) Add(ctx context.Context, specs []string) Summary {
	s := Summary{Op: "add"}
	p := e.progress(len(specs))
	for _, raw := range specs {
		e.addOne(ctx, p, &s, raw)
	}
	return s
}

func (e *Engine) addOne(ctx context.Context, p *ui.Progress, s *Summary, raw string) {
	m := e.manifest()
	name, version := ParseSpec(raw)
	if name == "" || (version == "" && strings.Contains(raw, "==")) {
		e.Report.Error(&ValidationError{Kind: "package", Name: raw, Problem: "is not a valid spec"})
		s.Skipped = append(s.Skipped, raw)
		return
	}
	if cur, ok := m.Packages[name]; ok && (version == "" || version == cur) {
		e.Report.Error(&ValidationError{Kind: "package", Name: name, Problem: "already exists"})
		s.Skipped = append(s.Skipped, name)
		return
	}

	spec := name
	if version != "" {
		spec = name + "==" + version
	}
	p.Step("Installing %s", spec)
	err := e.journalled(name, journal.OpInstall, spec, func() error {
		_, err := e.Installer.Install(ctx, spec)
		return err
	})
	if err != nil {
		e.Report.Error(fmt.Errorf("installing %s: %w", spec, err))
		s.Failed = append(s.Failed, name)
		return
	}

	if version == "" {
		version, err = e.Resolver.Latest(ctx, name)
		if err != nil {
			e.Report.Error(err)
			s.Failed = append(s.Failed, name)
			e.drift(s, name, "", "installed but not recorded: version unknown")
			return
		}
		p.Log("latest version of %s is %s", name, version)
	}

	prev, had := m.Packages[name]
	m.Packages[name] = version
	if err := e.save(); err != nil {
		if had {
			m.Packages[name] = prev
		} else {
			delete(m.Packages, name)
		}
		e.Report.Error(fmt.Errorf("saving manifest: %w", err))
		s.Failed = append(s.Failed, name)
		e.drift(s, name, version, "installed but not recorded: manifest write failed")
		return
	}
	e.settle(name)
	e.Report.Success("Added %s==%s", name, version)
	s.Succeeded = append(s.Succeeded, name)
}

// Remove uninstalls each package and drops it from the manifest, saving after
// every successful item.
func (e *Engine) Remove(ctx context.Context, names []string) Summary {
	s := Summary{Op: "remove"}
	m := e.manifest()
	p := e.progress(len(names))
	for _, raw := range names {
		name, _ := ParseSpec(raw)
		version, ok := m.Packages[name]
		if !ok {
			e.Report.Error(&ValidationError{Kind: "package", Name: name, Problem: "does not exist"})
			s.Skipped = append(s.Skipped, name)
			continue
		}

		p.Step("Uninstalling %s", name)
		err := e.journalled(name, journal.OpUninstall, name, func() error {
			_, err := e.Installer.Uninstall(ctx, name)
			return err
		})
		if err != nil {
			e.Report.Error(fmt.Errorf("uninstalling %s: %w", name, err))
			s.Failed = append(s.Failed, name)
			continue
		}

		delete(m.Packages, name)
		if err := e.save(); err != nil {
			m.Packages[name] = version
			e.Report.Error(fmt.Errorf("saving manifest: %w", err))
			s.Failed = append(s.Failed, name)
			e.drift(&s, name, version, "uninstalled but still recorded: manifest write failed")
			continue
		}
		e.settle(name)
		e.Report.Success("Removed %s", name)
		s.Succeeded = append(s.Succeeded, name)
	}
	return s
}

// Update reinstalls every recorded package at its latest version. Successful
// items are merged into the manifest and saved once at the end; failed items
// keep their old version. The returned error is set when the environment
// could not be ensured or the final save failed.
func (e *Engine) Update(ctx context.Context) (Summary, error) {
	s := Summary{Op: "update"}
	m := e.manifest()
	names := m.PackageNames()
	if len(names) == 0 {
		e.Report.Info("No packages to update")
		return s, nil
	}
	if err := e.EnsureEnv(ctx); err != nil {
		return s, err
	}

	old := make(map[string]string, len(names))
	updated := make(map[string]string, len(names))
	p := e.progress(len(names))
	for _, name := range names {
		old[name] = m.Packages[name]
		p.Step("Updating %s", name)

		latest, err := e.Resolver.Latest(ctx, name)
		if err != nil {
			e.Report.Error(err)
			s.Failed = append(s.Failed, name)
			continue
		}
		spec := name + "==" + latest
		err = e.journalled(name, journal.OpInstall, spec, func() error {
			_, err := e.Installer.Install(ctx, spec)
			return err
		})
		if err != nil {
			e.Report.Error(fmt.Errorf("installing %s: %w", spec, err))
			s.Failed = append(s.Failed, name)
			continue
		}
		updated[name] = latest
	}

	if len(updated) == 0 {
		return s, nil
	}
	for name, v := range updated {
		m.Packages[name] = v
	}
	if err := e.save(); err != nil {
		for name := range updated {
			m.Packages[name] = old[name]
		}
		for _, name := range names {
			v, ok := updated[name]
			if !ok {
				continue
			}
			s.Failed = append(s.Failed, name)
			if v != old[name] {
				e.drift(&s, name, v, "reinstalled but not recorded: manifest write failed")
			} else {
				e.settle(name)
			}
		}
		return s, fmt.Errorf("saving manifest: %w", err)
	}

	for _, name := range names {
		v, ok := updated[name]
		if !ok {
			continue
		}
		e.settle(name)
		if v == old[name] {
			e.Report.Detail("%s is up to date (%s)", name, v)
			s.Unchanged = append(s.Unchanged, name)
			continue
		}
		e.Report.Success("Updated %s %s -> %s", name, old[name], v)
		s.Succeeded = append(s.Succeeded, name)
	}
	return s, nil
}

// InstallRequirements runs Add over the specs of a requirements file.
func (e *Engine) InstallRequirements(ctx context.Context, path string) (Summary, error) {
	specs, err := requirements.Load(path)
	if err != nil {
		return Summary{Op: "install"}, err
	}
	if len(specs) == 0 {
		e.Report.Info("No packages listed in %s", path)
		return Summary{Op: "install"}, nil
	}
	if err := e.EnsureEnv(ctx); err != nil {
		return Summary{Op: "install"}, err
	}
	s := e.Add(ctx, specs)
	s.Op = "install"
	return s, nil
}

// InstallAll reinstalls every recorded package in one installer call. The
// manifest is not modified.
func (e *Engine) InstallAll(ctx context.Context) error {
	pins := e.manifest().Pins()
	if len(pins) == 0 {
		return ErrNothingToInstall
	}
	if err := e.EnsureEnv(ctx); err != nil {
		return err
	}
	e.Report.Info("Installing %d packages", len(pins))
	if _, err := e.Installer.InstallAll(ctx, pins); err != nil {
		return fmt.Errorf("installing packages: %w", err)
	}
	e.Report.Success("Installed %d packages", len(pins))
	return nil
}
