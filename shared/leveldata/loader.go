package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files
const (
	layerSolids           = "solids"
	groupPlayerSpawn      = "PlayerSpawn"
	groupFloatingPlatform = "FloatingPlatform"
	groupBox              = "Box"
	defaultPlatformTravel = 64.0
)

// LoadCollisionData parses a TMX file into a Level. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapW := float64(levelMap.Width * levelMap.TileWidth)
	mapH := float64(levelMap.Height * levelMap.TileHeight)
	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  mapW,
		Height: mapH,
	}
	// TMX is +Y down from the top-left corner
	toWorld := func(x, y float64) (float64, float64) {
		return x - mapW/2, mapH/2 - y
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != layerSolids {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var slopeType string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					slopeType = tilesetTile.Properties.GetString("slope")
				}

				cx, cy := toWorld(float64(x)*tileW+tileW/2, float64(y)*tileH+tileH/2)
				level.Solids = append(level.Solids, Solid{
					X:         cx,
					Y:         cy,
					W:         tileW,
					H:         tileH,
					SlopeType: slopeType,
					Points:    slopePoints(slopeType, tileW, tileH),
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlayerSpawn:
			for _, o := range og.Objects {
				x, y := toWorld(o.X, o.Y)
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     x,
					Y:     y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case groupFloatingPlatform:
			for _, o := range og.Objects {
				x, y := toWorld(o.X+o.Width/2, o.Y+o.Height/2)
				travel := o.Properties.GetFloat("travel")
				if travel == 0 {
					travel = defaultPlatformTravel
				}
				level.Platforms = append(level.Platforms, Platform{
					X: x, Y: y, W: o.Width, H: o.Height, Travel: travel,
				})
			}
		case groupBox:
			for _, o := range og.Objects {
				x, y := toWorld(o.X+o.Width/2, o.Y+o.Height/2)
				level.Boxes = append(level.Boxes, Box{X: x, Y: y, W: o.Width, H: o.Height})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].X < level.SpawnPoints[j].X
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
