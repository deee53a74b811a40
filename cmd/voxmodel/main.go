// Command voxmodel runs the block-model pipeline over an asset
// directory: it resolves every model's parent chain, collects texture
// dependencies, stitches the sprite atlas and bakes all models,
// reporting quad counts and unresolved texture references.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xlab/closer"
	"go.uber.org/zap"

	"voxmodel/internal/config"
	"voxmodel/internal/logger"
	"voxmodel/internal/registry"
	"voxmodel/pkg/atlas"
	"voxmodel/pkg/blockmodel"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	assetsDir := flag.String("assets", "", "asset directory (overrides config)")
	outPath := flag.String("out", "", "write the stitched atlas PNG here")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *assetsDir != "" {
		cfg.Assets.Dir = *assetsDir
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	closer.Bind(logger.Sync)
	defer closer.Close()

	blockmodel.SetLogger(logger.Log)

	if err := run(cfg, *outPath); err != nil {
		logger.Log.Error("pipeline failed", zap.Error(err))
		closer.Close()
		os.Exit(1)
	}
}

// target is one model to push through the pipeline.
type target struct {
	loc   blockmodel.Location
	state blockmodel.BakeState
}

func run(cfg *config.Config, outPath string) error {
	reg := registry.New(cfg.Assets.Dir, logger.Log)

	targets, err := discover(reg, cfg)
	if err != nil {
		return err
	}
	logger.Log.Info("discovered models", zap.Int("count", len(targets)))

	// Resolve everything first and gather the full material set so the
	// atlas can be stitched before any baking happens.
	report := blockmodel.MissingTextureSet{}
	materials := blockmodel.MaterialSet{}
	for _, t := range targets {
		model := reg.Model(t.loc)
		if model == nil {
			continue
		}
		ctx := blockmodel.ModelContext{Model: model, Gui3d: true}
		found, err := model.Materials(ctx, reg.Getter(), report)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", t.loc, err)
		}
		for m := range found {
			materials[m] = struct{}{}
		}
	}

	sheet := stitch(cfg, materials)
	if outPath != "" {
		if err := writePNG(outPath, sheet); err != nil {
			return err
		}
		logger.Log.Info("wrote atlas", zap.String("path", outPath),
			zap.Int("width", sheet.Sheet().Bounds().Dx()),
			zap.Int("height", sheet.Sheet().Bounds().Dy()))
	}

	sprites := func(m blockmodel.Material) *atlas.Sprite {
		return sheet.Sprite(m.Texture.String())
	}

	totalQuads := 0
	for _, t := range targets {
		model := reg.Model(t.loc)
		if model == nil {
			continue
		}
		ctx := blockmodel.ModelContext{Model: model, Gui3d: true}
		baked := model.Bake(ctx, t.state, nil, sprites, t.loc)
		totalQuads += baked.QuadCount()
		logger.Log.Debug("baked model",
			zap.Stringer("model", t.loc),
			zap.Int("quads", baked.QuadCount()),
			zap.Int("unculled", len(baked.Quads(nil))))
	}
	logger.Log.Info("baked all models",
		zap.Int("models", len(targets)),
		zap.Int("quads", totalQuads))

	logReport(report)
	return nil
}

// discover picks the models to bake: blockstate variants when a
// blockstates directory exists, otherwise every model JSON on disk
// baked with the configured default rotation.
func discover(reg *registry.Registry, cfg *config.Config) ([]target, error) {
	statesDir := filepath.Join(cfg.Assets.Dir, "blockstates")
	if entries, err := os.ReadDir(statesDir); err == nil {
		var targets []target
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			name := strings.TrimSuffix(e.Name(), ".json")
			bs, err := reg.LoadBlockState(name)
			if err != nil {
				logger.Log.Warn("skipping blockstate", zap.String("block", name), zap.Error(err))
				continue
			}
			variant, ok := bs.SelectVariant()
			if !ok {
				logger.Log.Warn("blockstate has no variants", zap.String("block", name))
				continue
			}
			targets = append(targets, target{
				loc:   blockmodel.ParseLocation(variant.Model),
				state: blockmodel.RotationYState(variant.Y),
			})
		}
		return targets, nil
	}

	modelsDir := filepath.Join(cfg.Assets.Dir, "models")
	var targets []target
	err := filepath.WalkDir(modelsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".json") {
			return err
		}
		rel, err := filepath.Rel(modelsDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(strings.TrimSuffix(rel, ".json"))
		targets = append(targets, target{
			loc:   blockmodel.ParseLocation(name),
			state: blockmodel.RotationYState(cfg.Bake.RotationY),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning models: %w", err)
	}
	return targets, nil
}

func stitch(cfg *config.Config, materials blockmodel.MaterialSet) *atlas.Atlas {
	sheet := atlas.New(cfg.Atlas.TileSize)
	texturesDir := filepath.Join(cfg.Assets.Dir, "textures")
	for m := range materials {
		if m.Missing() {
			continue // the placeholder covers it
		}
		name := m.Texture.String()
		path := filepath.Join(texturesDir, filepath.FromSlash(m.Texture.Path)+".png")
		if err := sheet.AddFile(name, path); err != nil {
			logger.Log.Warn("texture unavailable", zap.String("texture", name), zap.Error(err))
		}
	}
	sheet.Build()
	return sheet
}

func writePNG(path string, sheet *atlas.Atlas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create atlas file: %w", err)
	}
	defer f.Close()
	return png.Encode(f, sheet.Sheet())
}

func logReport(report blockmodel.MissingTextureSet) {
	if len(report) == 0 {
		return
	}
	missing := make([]blockmodel.MissingTexture, 0, len(report))
	for m := range report {
		missing = append(missing, m)
	}
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Model != missing[j].Model {
			return missing[i].Model < missing[j].Model
		}
		return missing[i].Reference < missing[j].Reference
	})
	for _, m := range missing {
		logger.Log.Warn("unresolved texture reference",
			zap.String("reference", m.Reference),
			zap.String("model", m.Model))
	}
}
