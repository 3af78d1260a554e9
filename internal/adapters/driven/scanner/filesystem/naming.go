package filesystem

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// File name markers of the dataset tree.
const (
	cameraMarker    = "main_camera_trajectory"
	pickPlaceMarker = "PickPlace_dataset"
	trajMarker      = "trajectory"
	layoutMarker    = "initial_layout"
	snapshotMarker  = "top_down"
)

var digits = regexp.MustCompile(`\d+`)

// Classify maps a file name to its record kind. The second return is
// the clean object name hint for object trajectories. ok is false for
// files that are not part of the dataset.
func Classify(path string) (kind domain.RecordKind, object string, ok bool) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return "", "", false
	}

	switch {
	case strings.Contains(base, cameraMarker):
		return domain.KindCameraTrajectory, "", true
	case strings.Contains(base, pickPlaceMarker):
		return domain.KindPickPlace, "", true
	case strings.Contains(base, trajMarker):
		return domain.KindObjectTrajectory, objectHint(base), true
	case strings.Contains(base, layoutMarker):
		return domain.KindInitialLayout, "", true
	case strings.Contains(base, snapshotMarker) && strings.EqualFold(filepath.Ext(base), ".png"):
		return domain.KindSnapshot, "", true
	default:
		return "", "", false
	}
}

// objectHint extracts the clean object name from a trajectory file
// name such as "011 banana trajectory.json".
func objectHint(base string) string {
	idx := strings.Index(base, trajMarker)
	return domain.CleanName(strings.TrimSpace(base[:idx]))
}

// parseNumbers extracts the participant and scene numbers from the
// path below the dataset root: the first and second integers appearing
// in the directory components. The file name itself is ignored; object
// names carry their own digits.
func parseNumbers(rel string) (participant, scene int, err error) {
	var nums []int
	for _, component := range strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/") {
		if match := digits.FindString(component); match != "" {
			n, convErr := strconv.Atoi(match)
			if convErr != nil {
				continue
			}
			nums = append(nums, n)
			if len(nums) == 2 {
				return nums[0], nums[1], nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: no participant/scene numbers in %q", domain.ErrInvalidInput, rel)
}
