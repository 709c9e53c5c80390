package icosphere

import (
	"fmt"

	"github.com/alitto/pond/v2"

	"github.com/Faultbox/icosphere/pkg/math"
)

// generateParallel subdivides each base face on its own pool task. Every
// task fills a private buffer; buffers are joined in base-face order so
// the result matches generateSequential exactly.
func (s *Sphere) generateParallel(base [12]math.Vec3, p painter) ([]Triangle, error) {
	pool := pond.NewPool(s.workers)
	defer pool.StopAndWait()

	depth, radius := s.depth, s.radius
	perFace := FaceCount(depth) / len(IcosahedronFaces)

	buffers := make([][]Triangle, len(IcosahedronFaces))
	tasks := make([]pond.Task, len(IcosahedronFaces))
	for i, f := range IcosahedronFaces {
		tasks[i] = pool.SubmitErr(func() error {
			buf, err := subdivide(make([]Triangle, 0, perFace), base[f[0]], base[f[1]], base[f[2]], depth, radius, p)
			buffers[i] = buf
			return err
		})
	}

	for i, task := range tasks {
		if err := task.Wait(); err != nil {
			return nil, fmt.Errorf("base face %d: %w", i, err)
		}
	}

	out := make([]Triangle, 0, FaceCount(depth))
	for _, buf := range buffers {
		out = append(out, buf...)
	}
	return out, nil
}
