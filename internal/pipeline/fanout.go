package pipeline

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"faultline.dev/pkg/faultline/pkg/codepath"
	"faultline.dev/pkg/faultline/pkg/probe"
)

// Failure modes the fanout pipeline can have injected.
var (
	ErrWorkerFailed = errors.New("fanout: shard worker failed")
	ErrBadTotal     = errors.New("fanout: total out of range")
)

func init() {
	register(Pipeline{
		Name:        "fanout",
		Description: "fan out shard workers and probe the joined result",
		Args:        fanoutArgs,
	})
}

// fanoutArgs sums shards on parallel workers. The workers themselves
// carry no probes — probe state is shared and concurrent visits would
// corrupt the ordinals — only the joined results are probed, after
// errgroup.Wait has serialized them.
func fanoutArgs(s *probe.State) codepath.Args[string] {
	shards := [][]int{
		{1, 2, 3},
		{10, 20, 30},
		{100, 200, 300},
	}

	return codepath.Args[string]{
		Path: func() (string, error) {
			return runFanout(s, shards)
		},
	}
}

func runFanout(s *probe.State, shards [][]int) (string, error) {
	var g errgroup.Group

	partials := make([]int, len(shards))

	for i, shard := range shards {
		g.Go(func() error {
			for _, n := range shard {
				partials[i] += n
			}

			return nil
		})
	}

	err := probe.VisitErr(s, "join shard workers", g.Wait(), ErrWorkerFailed)
	if err != nil {
		return "", err
	}

	total := 0
	for _, p := range partials {
		total += p
	}

	total, err = probe.Visit(s, "validate total", total, rangeCheck(total), ErrBadTotal)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("total=%d", total), nil
}

func rangeCheck(total int) error {
	if total <= 0 {
		return fmt.Errorf("fanout: non-positive total %d", total)
	}

	return nil
}
