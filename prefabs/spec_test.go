package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/boomerang/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedSpecs(t *testing.T) {
	boss, err := LoadBossSpec()
	require.NoError(t, err)
	assert.Equal(t, 100, boss.MaxHP)
	require.Len(t, boss.Phases, 2)
	assert.Equal(t, "enraged", boss.Phases[1].Name)
	assert.Equal(t, "selector", boss.Phases[0].Tree.Node().Kind)

	col, err := boss.Collider.Collider()
	require.NoError(t, err)
	assert.True(t, col.Excludes(component.TagBossEnemyParts))
	assert.True(t, col.Excludes(component.TagBeam))
	assert.False(t, col.Excludes(component.TagBoomerang))
	assert.Equal(t, 10.0, boss.Actions.JumpDistance)

	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, 12.0, player.Boomerang.MaxRange)

	scene, err := LoadSceneSpec()
	require.NoError(t, err)
	assert.Equal(t, "arena", scene.Name)
}

func TestVec3SpecForms(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want Vec3Spec
		err  bool
	}{
		{"sequence", "v: [1, 2, 3]", Vec3Spec{1, 2, 3}, false},
		{"mapping", "v: {x: 1, z: 3}", Vec3Spec{X: 1, Z: 3}, false},
		{"short", "v: [1, 2]", Vec3Spec{}, true},
		{"scalar", "v: 4", Vec3Spec{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out struct {
				V Vec3Spec `yaml:"v"`
			}
			err := yaml.Unmarshal([]byte(c.src), &out)
			if c.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, out.V)
		})
	}
}

func TestColliderSpecErrors(t *testing.T) {
	cases := []struct {
		name string
		spec ColliderSpec
	}{
		{"box_without_extents", ColliderSpec{Shape: "box"}},
		{"sphere_without_radius", ColliderSpec{Shape: "sphere"}},
		{"unknown_shape", ColliderSpec{Shape: "capsule", Radius: 1}},
		{"unknown_tag", ColliderSpec{Shape: "sphere", Radius: 1, Exclude: []string{"bos"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.spec.Collider()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSpec))
		})
	}
}

func TestBossDefaultsAndValidation(t *testing.T) {
	spec := BossSpec{Phases: []PhaseSpec{{Name: "only"}}}
	spec.Collider = ColliderSpec{Shape: "sphere", Radius: 1}
	spec.Parts.Collider = ColliderSpec{Shape: "sphere", Radius: 1}
	spec.Beam.Collider = ColliderSpec{Shape: "sphere", Radius: 1}
	spec.applyDefaults()
	require.NoError(t, spec.Validate())
	assert.Equal(t, 1.0, spec.Phases[0].HPTrigger)
	assert.Equal(t, 1.2, spec.Actions.ChargeTime)

	spec.Phases = append(spec.Phases, PhaseSpec{Name: "late", HPTrigger: 1.0})
	assert.ErrorIs(t, spec.Validate(), ErrInvalidSpec)

	spec.Phases = nil
	assert.ErrorIs(t, spec.Validate(), ErrInvalidSpec)
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	src := "name: tuned\nstage:\n  collider: {shape: box, extents: [5, 1, 5]}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, SceneFile), []byte(src), 0o644))

	scene, err := LoadSceneSpec()
	require.NoError(t, err)
	assert.Equal(t, "tuned", scene.Name)
	assert.Equal(t, 5.0, scene.Stage.Collider.Extents.X)

	_, ok := ModTime(SceneFile)
	assert.True(t, ok)
}

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, BossFile), []byte("name: b\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, BossFile, name)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for boss.yaml")
	}
}
