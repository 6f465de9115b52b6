package dockerd

import (
	"sort"
	"strings"

	docker "github.com/fsouza/go-dockerclient"

	"github.com/skillcoder/dockerscaler-controller/internal/logic/scaler"
)

func toRuntimeContainer(c *docker.APIContainers) scaler.RuntimeContainer {
	name := c.ID
	if len(c.Names) > 0 {
		// The daemon reports names with a leading slash.
		name = strings.TrimPrefix(c.Names[0], "/")
	}

	return scaler.RuntimeContainer{
		ID:     c.ID,
		Name:   name,
		Image:  c.Image,
		State:  c.State,
		Labels: c.Labels,
	}
}

func toContainerDetails(c *docker.Container) *scaler.ContainerDetails {
	details := &scaler.ContainerDetails{
		ID:   c.ID,
		Name: strings.TrimPrefix(c.Name, "/"),
	}

	if c.Config == nil {
		return details
	}

	details.Image = c.Config.Image
	details.Env = c.Config.Env
	details.Cmd = c.Config.Cmd
	details.Labels = c.Config.Labels

	for port := range c.Config.ExposedPorts {
		details.ExposedPorts = append(details.ExposedPorts, string(port))
	}

	sort.Strings(details.ExposedPorts)

	return details
}

func toUsageSample(stats *docker.Stats) *scaler.UsageSample {
	return &scaler.UsageSample{
		CPUTotal:   stats.CPUStats.CPUUsage.TotalUsage,
		SystemCPU:  stats.CPUStats.SystemCPUUsage,
		OnlineCPUs: int(stats.CPUStats.OnlineCPUs),
		MemUsage:   stats.MemoryStats.Usage,
		MemLimit:   stats.MemoryStats.Limit,
	}
}

func toDockerConfig(spec scaler.CloneSpec) *docker.Config {
	cfg := &docker.Config{
		Image:  spec.Image,
		Env:    spec.Env,
		Cmd:    spec.Cmd,
		Labels: spec.Labels,
	}

	if len(spec.ExposedPorts) > 0 {
		cfg.ExposedPorts = make(map[docker.Port]struct{}, len(spec.ExposedPorts))
		for _, port := range spec.ExposedPorts {
			cfg.ExposedPorts[docker.Port(port)] = struct{}{}
		}
	}

	return cfg
}
