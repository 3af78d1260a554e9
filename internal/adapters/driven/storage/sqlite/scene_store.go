package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
)

// sceneStore implements driven.SceneStore.
type sceneStore struct {
	store *Store
}

var _ driven.SceneStore = (*sceneStore)(nil)

// SaveScene stores or updates a scene and its objects.
func (s *sceneStore) SaveScene(ctx context.Context, scene *domain.Scene) error {
	cameraJSON, err := marshalOrNull(scene.CameraTrajectory)
	if err != nil {
		return fmt.Errorf("marshalling camera trajectory: %w", err)
	}
	layoutJSON, err := marshalOrNull(scene.InitialLayout)
	if err != nil {
		return fmt.Errorf("marshalling layout: %w", err)
	}

	// A re-import keeps the existing row id and creation time.
	existing, err := s.GetScene(ctx, scene.Participant, scene.Number)
	switch {
	case err == nil:
		scene.ID = existing.ID
		scene.CreatedAt = existing.CreatedAt
	case errors.Is(err, domain.ErrNotFound):
		if scene.ID == "" {
			scene.ID = uuid.New().String()
		}
		scene.CreatedAt = time.Now().UTC()
	default:
		return err
	}
	scene.UpdatedAt = time.Now().UTC()

	var snapPath sql.NullString
	var snapWidth, snapHeight sql.NullInt64
	if scene.Snapshot != nil {
		snapPath = sql.NullString{String: scene.Snapshot.Path, Valid: true}
		snapWidth = sql.NullInt64{Int64: int64(scene.Snapshot.Width), Valid: true}
		snapHeight = sql.NullInt64{Int64: int64(scene.Snapshot.Height), Valid: true}
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO scenes (id, participant, scene_number, camera_trajectory,
			initial_layout, snapshot_path, snapshot_width, snapshot_height,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			camera_trajectory = excluded.camera_trajectory,
			initial_layout = excluded.initial_layout,
			snapshot_path = excluded.snapshot_path,
			snapshot_width = excluded.snapshot_width,
			snapshot_height = excluded.snapshot_height,
			updated_at = excluded.updated_at
	`, scene.ID, scene.Participant, scene.Number, cameraJSON, layoutJSON,
		snapPath, snapWidth, snapHeight, scene.CreatedAt, scene.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving scene: %w", err)
	}

	// Replace the object rows wholesale; packing order is positional.
	if _, err := tx.ExecContext(ctx, "DELETE FROM objects WHERE scene_id = ?", scene.ID); err != nil {
		return fmt.Errorf("clearing objects: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO objects (id, scene_id, position, name, unique_id,
			pick_pose, place_pose, trajectory)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i := range scene.Objects {
		obj := &scene.Objects[i]
		pickJSON, err := json.Marshal(obj.PickPose)
		if err != nil {
			return fmt.Errorf("marshalling pick pose: %w", err)
		}
		placeJSON, err := json.Marshal(obj.PlacePose)
		if err != nil {
			return fmt.Errorf("marshalling place pose: %w", err)
		}
		trajJSON, err := marshalOrNull(obj.Trajectory)
		if err != nil {
			return fmt.Errorf("marshalling trajectory: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, uuid.New().String(), scene.ID, i,
			obj.Name, obj.UniqueID, string(pickJSON), string(placeJSON), trajJSON); err != nil {
			return fmt.Errorf("saving object %q: %w", obj.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetScene retrieves one scene with its objects.
func (s *sceneStore) GetScene(ctx context.Context, participant, number int) (*domain.Scene, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, participant, scene_number, camera_trajectory, initial_layout,
			snapshot_path, snapshot_width, snapshot_height, created_at, updated_at
		FROM scenes WHERE participant = ? AND scene_number = ?
	`, participant, number)

	scene, err := scanScene(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadObjects(ctx, scene); err != nil {
		return nil, err
	}
	return scene, nil
}

// ListScenes returns all scenes ordered by participant then number.
func (s *sceneStore) ListScenes(ctx context.Context) ([]domain.Scene, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, participant, scene_number, camera_trajectory, initial_layout,
			snapshot_path, snapshot_width, snapshot_height, created_at, updated_at
		FROM scenes ORDER BY participant, scene_number
	`)
	if err != nil {
		return nil, fmt.Errorf("querying scenes: %w", err)
	}
	defer rows.Close()

	var scenes []domain.Scene //nolint:prealloc // size unknown from query
	for rows.Next() {
		scene, err := scanScene(rows)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, *scene)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenes: %w", err)
	}

	for i := range scenes {
		if err := s.loadObjects(ctx, &scenes[i]); err != nil {
			return nil, err
		}
	}
	return scenes, nil
}

// ListParticipants returns all scenes grouped by participant.
func (s *sceneStore) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	scenes, err := s.ListScenes(ctx)
	if err != nil {
		return nil, err
	}

	var participants []domain.Participant
	for i := range scenes {
		n := len(participants)
		if n == 0 || participants[n-1].Number != scenes[i].Participant {
			participants = append(participants, domain.Participant{Number: scenes[i].Participant})
			n++
		}
		participants[n-1].Scenes = append(participants[n-1].Scenes, scenes[i])
	}
	return participants, nil
}

// DeleteScene removes a scene; objects cascade.
func (s *sceneStore) DeleteScene(ctx context.Context, participant, number int) error {
	_, err := s.store.db.ExecContext(ctx,
		"DELETE FROM scenes WHERE participant = ? AND scene_number = ?", participant, number)
	if err != nil {
		return fmt.Errorf("deleting scene: %w", err)
	}
	return nil
}

// Count returns the number of stored scenes and objects.
func (s *sceneStore) Count(ctx context.Context) (int, int, error) {
	var scenes, objects int
	if err := s.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM scenes").Scan(&scenes); err != nil {
		return 0, 0, fmt.Errorf("counting scenes: %w", err)
	}
	if err := s.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM objects").Scan(&objects); err != nil {
		return 0, 0, fmt.Errorf("counting objects: %w", err)
	}
	return scenes, objects, nil
}

// loadObjects attaches the object rows of a scene in packing order.
func (s *sceneStore) loadObjects(ctx context.Context, scene *domain.Scene) error {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT name, unique_id, pick_pose, place_pose, trajectory
		FROM objects WHERE scene_id = ?
		ORDER BY position
	`, scene.ID)
	if err != nil {
		return fmt.Errorf("querying objects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var obj domain.Object
		var pickJSON, placeJSON string
		var trajJSON sql.NullString
		if err := rows.Scan(&obj.Name, &obj.UniqueID, &pickJSON, &placeJSON, &trajJSON); err != nil {
			return fmt.Errorf("scanning object: %w", err)
		}
		if err := json.Unmarshal([]byte(pickJSON), &obj.PickPose); err != nil {
			return fmt.Errorf("unmarshaling pick pose: %w", err)
		}
		if err := json.Unmarshal([]byte(placeJSON), &obj.PlacePose); err != nil {
			return fmt.Errorf("unmarshaling place pose: %w", err)
		}
		if trajJSON.Valid {
			if err := json.Unmarshal([]byte(trajJSON.String), &obj.Trajectory); err != nil {
				return fmt.Errorf("unmarshaling trajectory: %w", err)
			}
		}
		scene.Objects = append(scene.Objects, obj)
	}
	return rows.Err()
}

// rowScanner covers sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanScene reads one scene row without its objects.
func scanScene(row rowScanner) (*domain.Scene, error) {
	var scene domain.Scene
	var cameraJSON, layoutJSON, snapPath sql.NullString
	var snapWidth, snapHeight sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&scene.ID, &scene.Participant, &scene.Number,
		&cameraJSON, &layoutJSON, &snapPath, &snapWidth, &snapHeight,
		&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning scene: %w", err)
	}

	if cameraJSON.Valid {
		if err := json.Unmarshal([]byte(cameraJSON.String), &scene.CameraTrajectory); err != nil {
			return nil, fmt.Errorf("unmarshaling camera trajectory: %w", err)
		}
	}
	if layoutJSON.Valid {
		if err := json.Unmarshal([]byte(layoutJSON.String), &scene.InitialLayout); err != nil {
			return nil, fmt.Errorf("unmarshaling layout: %w", err)
		}
	}
	if snapPath.Valid {
		scene.Snapshot = &domain.SnapshotInfo{
			Path:   snapPath.String,
			Width:  int(snapWidth.Int64),
			Height: int(snapHeight.Int64),
		}
	}
	if createdAt.Valid {
		scene.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		scene.UpdatedAt = updatedAt.Time
	}
	return &scene, nil
}

// marshalOrNull encodes a slice as JSON, mapping empty to SQL NULL.
func marshalOrNull[T any](values []T) (sql.NullString, error) {
	if len(values) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}
