package installer

import (
	"context"
	"path"
	"path/filepath"

	"arch-setup/internal/config"
	"arch-setup/internal/logger"
)

// fetch downloads url to dest unless this is a dry run.
func (e *Executor) fetch(ctx context.Context, url, dest string) error {
	if e.dryRun {
		logger.Info("[INFO] Would download %s to %s\n", url, dest)
		return nil
	}
	logger.Info("[INFO] Downloading %s\n", url)
	return downloadFile(ctx, e.client, e.fs, url, dest)
}

// runScriptAddon downloads an installer script, runs it with its interpreter
// and deletes it afterwards.
func (e *Executor) runScriptAddon(ctx context.Context, addon config.ScriptAddon, url string) error {
	file := addon.File
	if file == "" {
		file = path.Base(url)
	}
	dest := filepath.Join(e.workDir, file)

	if err := e.fetch(ctx, url, dest); err != nil {
		return err
	}

	interpreter := addon.Interpreter
	if interpreter == "" {
		interpreter = "sh"
	}
	c := Command{Name: interpreter, Args: append([]string{file}, addon.Args...), Dir: e.workDir}
	if err := e.runner.Run(ctx, c); err != nil {
		return err
	}

	e.removeAll(dest)
	return nil
}

// installBedrock resolves the installer from the configured GitHub release and
// falls back to the pinned URL when the lookup fails.
func (e *Executor) installBedrock(ctx context.Context) error {
	addon := e.cfg.Addons.Bedrock
	url := addon.URL

	if !e.dryRun && addon.Repo != "" {
		resolved, err := releaseAssetURL(ctx, e.client, addon.APIBase, addon.Repo, addon.Tag, addon.AssetSuffix)
		if err != nil {
			logger.Warn("[WARN] Release lookup failed, using %s: %v\n", url, err)
		} else {
			url = resolved
		}
	}

	script := addon.ScriptAddon
	script.File = "" // named after whichever URL was picked
	return e.runScriptAddon(ctx, script, url)
}

// installKDETheme downloads the theme archive into a scratch directory, unpacks
// it and runs its install script from the unpacked root.
func (e *Executor) installKDETheme(ctx context.Context) error {
	theme := e.cfg.Addons.KDETheme
	if theme.URL == "" {
		logger.Warn("[WARN] No KDE theme archive configured, skipping\n")
		return nil
	}

	scratch, err := e.tempDir("kde-theme-")
	if err != nil {
		return err
	}
	archive := filepath.Join(scratch, path.Base(theme.URL))

	if err := e.fetch(ctx, theme.URL, archive); err != nil {
		return err
	}

	root := filepath.Join(scratch, archiveStem(archive))
	if !e.dryRun {
		root, err = ExtractArchive(e.fs, archive, scratch)
		if err != nil {
			return err
		}
	}

	script := theme.Script
	if script == "" {
		script = "install.sh"
	}
	if err := e.runner.Run(ctx, Command{Name: "sh", Args: []string{script}, Dir: root}); err != nil {
		return err
	}

	e.removeAll(scratch)
	return nil
}
