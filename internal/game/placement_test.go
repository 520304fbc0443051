package game

import (
	"errors"
	"math/rand"
	"testing"
)

// renderedLayout generates a layout for cfg and paints it onto a fresh skyline.
func renderedLayout(t *testing.T, cfg Config, seed int64) ([]Building, *Skyline) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buildings := mustGenerator(t, cfg).Generate(rng)
	sky := NewSkyline(cfg.PixelWidth(), cfg.PixelHeight())
	for _, b := range buildings {
		RenderBuilding(sky, cfg, b, rng)
	}
	return buildings, sky
}

func TestBuildingIndex_StandsOnRoof(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(0); seed < 100; seed++ {
		buildings, sky := renderedLayout(t, cfg, seed)
		pos, err := BuildingIndex{Cfg: cfg}.Place(buildings, sky, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		n := len(buildings)
		for player, p := range pos {
			found := false
			for i, b := range buildings {
				if b.Midpoint()-float64(cfg.AvatarWidth)/2 != p.X {
					continue
				}
				found = true
				if want := float64(cfg.PixelHeight() - b.Height - cfg.AvatarHeight); p.Y != want {
					t.Fatalf("seed %d: player %d y = %v, want %v", seed, player, p.Y, want)
				}
				if player == 0 && (i < 1 || i > 3) {
					t.Fatalf("seed %d: left avatar on building %d of %d", seed, i, n)
				}
				if player == 1 && (i < n-4 || i > n-2) {
					t.Fatalf("seed %d: right avatar on building %d of %d", seed, i, n)
				}
				break
			}
			if !found {
				t.Fatalf("seed %d: player %d at %s is not centred on any building", seed, player, p)
			}
		}
		if pos[0].X >= pos[1].X {
			t.Fatalf("seed %d: left avatar %s is not left of right avatar %s", seed, pos[0], pos[1])
		}
	}
}

func TestBuildingIndex_FewBuildings(t *testing.T) {
	cfg := DefaultConfig()
	b := func(i int) Building { return Building{GridX: i * 6, X: i * 60, Width: 60, Height: 100 + 10*i} }

	pos, err := BuildingIndex{Cfg: cfg}.Place([]Building{b(0)}, nil, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrPlacementFailed) {
		t.Fatalf("one building: err = %v, want ErrPlacementFailed", err)
	}
	if pos != bottomCorners(cfg) {
		t.Fatalf("one building: positions %v, want the bottom corners", pos)
	}

	for n := 2; n <= 5; n++ {
		var buildings []Building
		for i := 0; i < n; i++ {
			buildings = append(buildings, b(i))
		}
		for seed := int64(0); seed < 20; seed++ {
			pos, err := BuildingIndex{Cfg: cfg}.Place(buildings, nil, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("%d buildings: %v", n, err)
			}
			if pos[0].X >= float64(buildings[n/2].X) {
				t.Fatalf("%d buildings: left avatar at %s is not in the left half", n, pos[0])
			}
			if pos[1].X < float64(buildings[n/2].X) {
				t.Fatalf("%d buildings: right avatar at %s is not in the right half", n, pos[1])
			}
		}
	}
}

func TestColumnProbe_StandsOnFirstSolidPixel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Placement = PlacementColumn
	band := float64(cfg.ToPixels(cfg.EdgeBandGrid))
	for seed := int64(0); seed < 100; seed++ {
		buildings, sky := renderedLayout(t, cfg, seed)
		pos, err := ColumnProbe{Cfg: cfg}.Place(buildings, sky, rand.New(rand.NewSource(seed)))
		if err != nil {
			// The random column landed in a border gap; the sky reaches the floor.
			if !errors.Is(err, ErrPlacementFailed) {
				t.Fatalf("seed %d: unexpected error %v", seed, err)
			}
			continue
		}
		if pos[0].X > band || pos[1].X+float64(cfg.AvatarWidth) < float64(cfg.PixelWidth())-band {
			t.Fatalf("seed %d: avatars %s %s outside the edge bands", seed, pos[0], pos[1])
		}
		for player, p := range pos {
			bottom := int(p.Y) + cfg.AvatarHeight
			// Some column under the avatar must have its roof exactly at its feet.
			touching := false
			for x := int(p.X); x < int(p.X)+cfg.AvatarWidth; x++ {
				if y, ok := sky.FirstSolidY(x); ok && y == bottom {
					touching = true
					break
				}
			}
			if !touching {
				t.Fatalf("seed %d: player %d at %s is not standing on the skyline", seed, player, p)
			}
		}
	}
}

func TestColumnProbe_WideBandKeepsSides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EdgeBandGrid = cfg.MapWidth // rejected by Validate, but Place must still cope
	for seed := int64(0); seed < 200; seed++ {
		buildings, sky := renderedLayout(t, cfg, seed)
		pos, _ := ColumnProbe{Cfg: cfg}.Place(buildings, sky, rand.New(rand.NewSource(seed)))
		if pos[0].X >= pos[1].X {
			t.Fatalf("seed %d: left player at %s is not left of right player at %s", seed, pos[0], pos[1])
		}
		if mid := float64(cfg.PixelWidth() / 2); pos[0].X+float64(cfg.AvatarWidth)/2 > mid {
			t.Fatalf("seed %d: left player at %s is past the centre", seed, pos[0])
		}
	}
}

func TestColumnProbe_OpenSkyFails(t *testing.T) {
	cfg := DefaultConfig()
	sky := NewSkyline(cfg.PixelWidth(), cfg.PixelHeight())
	pos, err := ColumnProbe{Cfg: cfg}.Place(nil, sky, rand.New(rand.NewSource(3)))
	if !errors.Is(err, ErrPlacementFailed) {
		t.Fatalf("empty skyline: err = %v, want ErrPlacementFailed", err)
	}
	for player, p := range pos {
		if want := float64(cfg.PixelHeight() - cfg.AvatarHeight); p.Y != want {
			t.Fatalf("player %d y = %v, want the map bottom %v", player, p.Y, want)
		}
	}
}

func TestFallback_RecoversFromColumnProbe(t *testing.T) {
	cfg := DefaultConfig()
	buildings, _ := renderedLayout(t, cfg, 5)
	empty := NewSkyline(cfg.PixelWidth(), cfg.PixelHeight())

	policy := Fallback{Primary: ColumnProbe{Cfg: cfg}, Secondary: BuildingIndex{Cfg: cfg}}
	pos, err := policy.Place(buildings, empty, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("fallback should recover, got %v", err)
	}
	if pos[0].Y == float64(cfg.PixelHeight()-cfg.AvatarHeight) {
		t.Fatalf("fallback left the avatar at the map bottom: %s", pos[0])
	}
}

func TestNewPlacementPolicy(t *testing.T) {
	cfg := DefaultConfig()
	if p, err := NewPlacementPolicy(cfg); err != nil {
		t.Fatal(err)
	} else if _, ok := p.(BuildingIndex); !ok {
		t.Fatalf("default policy = %T, want BuildingIndex", p)
	}
	cfg.Placement = PlacementColumn
	if p, err := NewPlacementPolicy(cfg); err != nil {
		t.Fatal(err)
	} else if _, ok := p.(Fallback); !ok {
		t.Fatalf("column policy = %T, want Fallback", p)
	}
	cfg.Placement = "nowhere"
	if _, err := NewPlacementPolicy(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("unknown policy: err = %v, want ErrInvalidConfig", err)
	}
}
