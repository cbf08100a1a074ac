package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoot_Run(t *testing.T) {
	var order []string
	step := func(name string, err error) Step {
		return Step{Name: name, Run: func(_ context.Context) (interface{}, error) {
			order = append(order, name)
			return name + " value", err
		}}
	}

	b := NewBoot(step("liveness", nil), step("ingest", nil), step("publish", nil))
	res := b.Run(context.Background())

	assert.Equal(t, []string{"liveness", "ingest", "publish"}, order, "strict order")
	assert.False(t, res.Failed())
	require.Len(t, res.Steps, 3)
	assert.True(t, res.Steps["ingest"].OK)
	assert.Equal(t, "ingest value", res.Steps["ingest"].Value)
	assert.Empty(t, res.Steps["ingest"].Error)
}

func TestBoot_Run_FailureIsolation(t *testing.T) {
	var order []string
	b := NewBoot(
		Step{Name: "liveness", Run: func(_ context.Context) (interface{}, error) {
			order = append(order, "liveness")
			return nil, nil
		}},
		Step{Name: "ingest", Run: func(_ context.Context) (interface{}, error) {
			order = append(order, "ingest")
			return nil, errors.New("source unreachable")
		}},
		Step{Name: "publish", Run: func(_ context.Context) (interface{}, error) {
			order = append(order, "publish")
			return "done", nil
		}},
	)

	res := b.Run(context.Background())

	assert.Equal(t, []string{"liveness", "ingest", "publish"}, order,
		"a failed step must not stop later steps")
	assert.True(t, res.Failed())
	assert.False(t, res.Steps["ingest"].OK)
	assert.Equal(t, "source unreachable", res.Steps["ingest"].Error)
	assert.True(t, res.Steps["publish"].OK)
	assert.Equal(t, "done", res.Steps["publish"].Value)
}

func TestBoot_Run_Empty(t *testing.T) {
	res := NewBoot().Run(context.Background())
	assert.False(t, res.Failed())
	assert.Empty(t, res.Steps)
}
