package dockerd

import (
	"errors"
	"net/http"
	"testing"

	docker "github.com/fsouza/go-dockerclient"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/dockerscaler-controller/internal/logic/scaler"
)

func Test_toRuntimeContainer(t *testing.T) {
	t.Parallel()

	t.Run("leading slash is trimmed from the name", func(t *testing.T) {
		t.Parallel()

		got := toRuntimeContainer(&docker.APIContainers{
			ID:    "abc",
			Names: []string{"/web"},
			Image: "web:latest",
			State: "running",
		})

		require.Equal(t, "web", got.Name)
		require.Equal(t, "abc", got.ID)
	})

	t.Run("missing name falls back to the id", func(t *testing.T) {
		t.Parallel()

		got := toRuntimeContainer(&docker.APIContainers{ID: "abc"})
		require.Equal(t, "abc", got.Name)
	})
}

func Test_toContainerDetails(t *testing.T) {
	t.Parallel()

	t.Run("exposed ports are sorted", func(t *testing.T) {
		t.Parallel()

		got := toContainerDetails(&docker.Container{
			ID:   "abc",
			Name: "/web",
			Config: &docker.Config{
				Image: "web:latest",
				Env:   []string{"MODE=prod"},
				ExposedPorts: map[docker.Port]struct{}{
					"9090/tcp": {},
					"8080/tcp": {},
				},
			},
		})

		require.Equal(t, "web", got.Name)
		require.Equal(t, []string{"8080/tcp", "9090/tcp"}, got.ExposedPorts)
	})

	t.Run("nil config yields bare details", func(t *testing.T) {
		t.Parallel()

		got := toContainerDetails(&docker.Container{ID: "abc", Name: "/web"})
		require.Equal(t, "abc", got.ID)
		require.Empty(t, got.Image)
	})
}

func Test_toUsageSample(t *testing.T) {
	t.Parallel()

	stats := &docker.Stats{}
	stats.CPUStats.CPUUsage.TotalUsage = 500
	stats.CPUStats.SystemCPUUsage = 2000
	stats.CPUStats.OnlineCPUs = 4
	stats.MemoryStats.Usage = 768
	stats.MemoryStats.Limit = 1024

	got := toUsageSample(stats)
	require.Equal(t, uint64(500), got.CPUTotal)
	require.Equal(t, uint64(2000), got.SystemCPU)
	require.Equal(t, 4, got.OnlineCPUs)
	require.Equal(t, uint64(768), got.MemUsage)
	require.Equal(t, uint64(1024), got.MemLimit)
}

func Test_toDockerConfig(t *testing.T) {
	t.Parallel()

	cfg := toDockerConfig(scaler.CloneSpec{
		Name:         "web-clone-1",
		Image:        "web-clone-1:latest",
		Env:          []string{"MODE=prod"},
		ExposedPorts: []string{"8080/tcp"},
		Labels:       map[string]string{"k": "v"},
	})

	require.Equal(t, "web-clone-1:latest", cfg.Image)
	require.Contains(t, cfg.ExposedPorts, docker.Port("8080/tcp"))
	require.Equal(t, "v", cfg.Labels["k"])
}

type mapErrorCase struct {
	name         string
	give         error
	wantNotFound bool
	wantInUse    bool
}

func Test_mapError(t *testing.T) {
	t.Parallel()

	tests := []mapErrorCase{
		{
			name:         "no such container",
			give:         &docker.NoSuchContainer{ID: "abc"},
			wantNotFound: true,
		},
		{
			name:         "no such image",
			give:         docker.ErrNoSuchImage,
			wantNotFound: true,
		},
		{
			name:         "api 404",
			give:         &docker.Error{Status: http.StatusNotFound, Message: "not found"},
			wantNotFound: true,
		},
		{
			name:      "api 409 is image in use",
			give:      &docker.Error{Status: http.StatusConflict, Message: "conflict"},
			wantInUse: true,
		},
		{
			name: "anything else passes through",
			give: errors.New("daemon exploded"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mapError(tt.give)

			var notFound *NotFoundError
			require.Equal(t, tt.wantNotFound, errors.As(got, &notFound))

			var inUse *ImageInUseError
			require.Equal(t, tt.wantInUse, errors.As(got, &inUse))

			if !tt.wantNotFound && !tt.wantInUse {
				require.Equal(t, tt.give, got)
			}
		})
	}
}
