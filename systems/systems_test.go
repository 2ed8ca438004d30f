package systems

import (
	"errors"
	"strings"
	"testing"

	"github.com/automoto/orbitcam/components"
	cfg "github.com/automoto/orbitcam/config"
	"github.com/automoto/orbitcam/orbit"
)

func TestGetAction(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr bool
		want       components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"pressed this frame", false, true, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"released this frame", true, false, components.ActionState{JustReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in components.InputData
			in.Previous[cfg.ActionOrbitLeft] = tt.prev
			in.Current[cfg.ActionOrbitLeft] = tt.curr
			if got := GetAction(&in, cfg.ActionOrbitLeft); got != tt.want {
				t.Errorf("GetAction = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOrbitInputMapsActions(t *testing.T) {
	var in components.InputData
	in.Current[cfg.ActionOrbitRight] = true
	in.Previous[cfg.ActionOrbitDown] = true
	in.Scroll = -1

	o := orbitInput{input: &in}
	if !o.Pressed(orbit.KeyYawPositive) {
		t.Error("right action should press the positive yaw key")
	}
	if o.Pressed(orbit.KeyYawNegative) || o.Pressed(orbit.KeyPitchPositive) {
		t.Error("unrelated keys reported as pressed")
	}
	if !o.Released(orbit.KeyPitchNegative) {
		t.Error("down action should release the negative pitch key")
	}
	if o.Scroll() != -1 {
		t.Errorf("Scroll = %v, want -1", o.Scroll())
	}
}

func TestToggleSettings(t *testing.T) {
	tests := []struct {
		name    string
		action  cfg.ActionID
		want    components.SettingsData
		changed bool
	}{
		{"no press", cfg.ActionNone, components.SettingsData{ShowHUD: true}, false},
		{"hud", cfg.ActionToggleHUD, components.SettingsData{}, true},
		{"axes", cfg.ActionToggleAxes, components.SettingsData{ShowHUD: true, ShowAxes: true}, true},
		{"fullscreen", cfg.ActionToggleFullscreen, components.SettingsData{ShowHUD: true, Fullscreen: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := components.SettingsData{ShowHUD: true}
			var in components.InputData
			if tt.action != cfg.ActionNone {
				in.Current[tt.action] = true
			}
			if changed := toggleSettings(&s, &in); changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
			if s != tt.want {
				t.Errorf("settings = %+v, want %+v", s, tt.want)
			}
		})
	}
}

func TestToggleSettingsIgnoresHeldKeys(t *testing.T) {
	s := components.SettingsData{ShowHUD: true}
	var in components.InputData
	in.Previous[cfg.ActionToggleHUD] = true
	in.Current[cfg.ActionToggleHUD] = true

	if toggleSettings(&s, &in) {
		t.Error("a held key must not toggle again")
	}
	if !s.ShowHUD {
		t.Error("ShowHUD flipped while the key was held")
	}
}

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func withStore(t *testing.T, s settingsStore) {
	t.Helper()
	prev := store
	store = s
	t.Cleanup(func() { store = prev })
}

func TestSettingsRoundTripThroughStore(t *testing.T) {
	mem := &memStore{items: map[string][]byte{}}
	withStore(t, mem)

	SaveCurrentSettings(&components.SettingsData{ShowAxes: true, Fullscreen: true})

	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	want := SavedSettings{ShowAxes: true, Fullscreen: true}
	if got == nil || *got != want {
		t.Errorf("LoadSettings = %+v, want %+v", got, want)
	}
}

func TestLoadSettingsFallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name    string
		store   settingsStore
		wantErr bool
	}{
		{"no store", nil, false},
		{"nothing saved", &memStore{items: map[string][]byte{}}, false},
		{"load fails", &memStore{loadErr: errors.New("disk gone")}, false},
		{"corrupt data", &memStore{items: map[string][]byte{cfg.Settings.ItemKey: []byte("{")}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withStore(t, tt.store)
			got, err := LoadSettings()
			if got != nil {
				t.Errorf("LoadSettings = %+v, want nil", got)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHUDLines(t *testing.T) {
	var st orbit.State
	st.Yaw.Direction = orbit.Positive
	st.Yaw.Velocity = 2.5
	st.Yaw.RampProgress = 0.25

	lines := hudLines(st, 1.5, cfg.Orbit)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !lines[0].active || lines[1].active || lines[2].active {
		t.Errorf("only the moving yaw line should be active: %+v", lines)
	}
	if !strings.Contains(lines[0].text, "2.50") {
		t.Errorf("yaw line %q is missing the velocity", lines[0].text)
	}
	if !strings.Contains(lines[2].text, "1.50") {
		t.Errorf("distance line %q is missing the distance", lines[2].text)
	}
}
