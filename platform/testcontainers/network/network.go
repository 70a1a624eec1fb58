package network

import (
	"context"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

const labelProject = "project"

// Network is a bridge network shared by the containers of one test suite.
type Network struct {
	network *testcontainers.DockerNetwork
	project string
}

func NewNetwork(ctx context.Context, project string) (*Network, error) {
	n, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{labelProject: project}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "create docker network for %s", project)
	}

	return &Network{network: n, project: project}, nil
}

func (n *Network) Name() string { return n.network.Name }

// Aliases maps the network to the host names a container answers to inside it.
func (n *Network) Aliases(names ...string) map[string][]string {
	return map[string][]string{n.network.Name: names}
}

func (n *Network) Remove(ctx context.Context) error {
	if err := n.network.Remove(ctx); err != nil {
		return errors.Wrapf(err, "remove docker network of %s", n.project)
	}
	return nil
}
