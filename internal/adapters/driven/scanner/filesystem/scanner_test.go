package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

const identity = `[[1,0,0],[0,1,0],[0,0,1]]`

// writeScene lays out one scene directory with the standard files.
func writeScene(t *testing.T, root string, participant, scene int) string {
	t.Helper()
	dir := filepath.Join(root,
		"participant_"+strconv.Itoa(participant), "scene_"+strconv.Itoa(scene))
	require.NoError(t, os.MkdirAll(dir, 0o755))

	files := map[string]string{
		"PickPlace_dataset.json": `[
			{"id": "011 banana-1204",
			 "pickRotation": ` + identity + `, "pickTranslation": [0,0,0],
			 "placeRotation": ` + identity + `, "placeTranslation": [1,1,1]}
		]`,
		"011 banana trajectory.json": `[
			{"rotation": ` + identity + `, "translation": [0,0,0], "timeStamp": 0},
			{"rotation": ` + identity + `, "translation": [1,1,1], "timeStamp": 50}
		]`,
		"main_camera_trajectory.json": `[
			{"rotation": ` + identity + `, "translation": [0,2,0], "timeStamp": 0}
		]`,
		"initial_layout.json": `[
			{"id": "011 banana-1204", "rotation": ` + identity + `, "translation": [0.5,0,0.5]}
		]`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func collect(t *testing.T, s *Scanner) []domain.RawRecord {
	t.Helper()
	ctx := context.Background()
	records, errs := s.Scan(ctx)

	var out []domain.RawRecord
	for records != nil || errs != nil {
		select {
		case r, ok := <-records:
			if !ok {
				records = nil
				continue
			}
			out = append(out, r)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			t.Fatalf("unexpected scan error: %v", err)
		}
	}
	return out
}

func TestScanner_Scan(t *testing.T) {
	t.Run("emits records with tree coordinates", func(t *testing.T) {
		root := t.TempDir()
		writeScene(t, root, 3, 1)

		scanner := New(root, false)
		require.NoError(t, scanner.Validate(context.Background()))

		records := collect(t, scanner)
		require.Len(t, records, 3) // camera skipped by default

		kinds := map[domain.RecordKind]domain.RawRecord{}
		for _, r := range records {
			kinds[r.Kind] = r
			assert.Equal(t, 3, r.Participant)
			assert.Equal(t, 1, r.Scene)
			assert.NotEmpty(t, r.Content)
		}
		assert.Contains(t, kinds, domain.KindPickPlace)
		assert.Contains(t, kinds, domain.KindInitialLayout)

		traj, ok := kinds[domain.KindObjectTrajectory]
		require.True(t, ok)
		assert.Equal(t, "011 banana", traj.Object)
	})

	t.Run("includes camera trajectories on request", func(t *testing.T) {
		root := t.TempDir()
		writeScene(t, root, 2, 1)

		records := collect(t, New(root, true))
		assert.Len(t, records, 4)
	})

	t.Run("scans multiple scenes", func(t *testing.T) {
		root := t.TempDir()
		writeScene(t, root, 1, 1)
		writeScene(t, root, 1, 2)
		writeScene(t, root, 2, 1)

		records := collect(t, New(root, false))
		assert.Len(t, records, 9)
	})

	t.Run("validate rejects missing root", func(t *testing.T) {
		scanner := New(filepath.Join(t.TempDir(), "nope"), false)
		assert.Error(t, scanner.Validate(context.Background()))
	})
}

func TestScanner_Watch(t *testing.T) {
	root := t.TempDir()
	dir := writeScene(t, root, 5, 1)

	scanner := New(root, false)
	defer scanner.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := scanner.Watch(ctx)
	require.NoError(t, err)

	// Touch a dataset file after the watch is established.
	time.Sleep(50 * time.Millisecond)
	path := filepath.Join(dir, "013 apple trajectory.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	select {
	case change := <-changes:
		assert.Equal(t, domain.KindObjectTrajectory, change.Record.Kind)
		assert.Equal(t, "013 apple", change.Record.Object)
		assert.Equal(t, 5, change.Record.Participant)
		assert.Equal(t, 1, change.Record.Scene)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}
