package engine

import (
	"flag"
	"testing"
	"time"
)

func TestFromMapParsesAndFallsBack(t *testing.T) {
	c := FromMap(map[string]string{
		"cell_px":       "12",
		"cycle_ms":      "250",
		"grid":          "false",
		"died_recently": "true",
		"seed":          "99",
	})
	if c.CellPixelSize != 12 || c.CycleTime != 250*time.Millisecond || c.GridLines || !c.DiedRecently || c.Seed != 99 {
		t.Fatalf("unexpected config %+v", c)
	}

	bad := FromMap(map[string]string{
		"cell_px":  "-3",
		"cycle_ms": "soon",
		"grid":     "maybe",
	})
	def := DefaultConfig()
	if bad.CellPixelSize != def.CellPixelSize || bad.CycleTime != def.CycleTime || bad.GridLines != def.GridLines {
		t.Fatalf("malformed values must keep defaults, got %+v", bad)
	}

	if FromMap(nil) != def {
		t.Fatal("nil map should yield defaults")
	}
}

func TestEnvSettingsFeedFromMap(t *testing.T) {
	env := []string{
		"HOME=/root",
		"MADLIFE_CELL_PX=6",
		"MADLIFE_DIED_RECENTLY=true",
		"MADLIFE_SEED=42",
		"MADLIFE_BROKEN",
		"XMADLIFE_GRID=false",
	}
	settings := EnvSettings(env)
	if len(settings) != 3 || settings["cell_px"] != "6" {
		t.Fatalf("unexpected settings %v", settings)
	}
	c := FromMap(settings)
	if c.CellPixelSize != 6 || !c.DiedRecently || c.Seed != 42 || !c.GridLines {
		t.Fatalf("environment not applied: %+v", c)
	}
	if len(EnvSettings(nil)) != 0 {
		t.Fatal("empty environment should yield no settings")
	}
}

func TestDefaults(t *testing.T) {
	c := DefaultConfig()
	if c.CellPixelSize != 40 || c.CycleTime != time.Second || !c.GridLines {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestNormalizedClamps(t *testing.T) {
	c := Config{CellPixelSize: -1, CycleTime: -time.Second}.normalized()
	if c.CellPixelSize != 1 || c.CycleTime != time.Millisecond {
		t.Fatalf("unexpected clamp result %+v", c)
	}
}

func TestBindFlags(t *testing.T) {
	c := DefaultConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-cell", "8", "-cycle", "50ms", "-grid=false", "-seed", "3"}); err != nil {
		t.Fatal(err)
	}
	if c.CellPixelSize != 8 || c.CycleTime != 50*time.Millisecond || c.GridLines || c.Seed != 3 {
		t.Fatalf("flags not bound: %+v", c)
	}
}
