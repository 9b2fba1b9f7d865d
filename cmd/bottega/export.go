package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportWatch bool

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write sitemap.xml, robots.txt, llms.txt, llms.json and feeds",
	Long: `export renders the discovery files into the public directory so they can be
served by a static host or a CDN. With --watch it keeps running and re-exports
whenever a post or the site file changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runExport(); err != nil {
			return err
		}
		if !exportWatch {
			return nil
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return watch(ctx, watchRoots(), 500*time.Millisecond, func() {
			if err := runExport(); err != nil {
				logger.Error("re-export failed", zap.Error(err))
			}
		})
	},
}

func init() {
	exportCmd.Flags().String("out", "", "output directory (default public)")
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "re-export when content changes")
	rootCmd.AddCommand(exportCmd)
}

func runExport() error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()
	_, err = app.Export(cfg.PublicDir)
	return err
}

func watchRoots() []string {
	roots := []string{cfg.ContentDir}
	if cfg.SiteFile != "" {
		roots = append(roots, cfg.SiteFile)
	}
	return roots
}

// watch calls fn, debounced, after any change below roots until ctx ends.
// Calls never run concurrently.
func watch(ctx context.Context, roots []string, debounce time.Duration, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			logger.Warn("not watching", zap.String("path", root), zap.Error(err))
			continue
		}
		if !info.IsDir() {
			if err := watcher.Add(root); err != nil {
				return err
			}
			continue
		}
		err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	logger.Info("watching for changes", zap.Strings("paths", roots))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
			fn()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						logger.Warn("watch new directory", zap.String("path", event.Name), zap.Error(err))
					}
				}
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		}
	}
}
