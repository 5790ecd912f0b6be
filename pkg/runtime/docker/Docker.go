package docker

import (
	"context"
	"crypto/tls"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/volume"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/tlsconfig"
	"github.com/pkg/errors"
	"github.com/simplecontainer/inventory/pkg/configuration"
	"github.com/simplecontainer/inventory/pkg/runtime/raw"
	"net/http"
)

func New(config *configuration.Configuration) (*Docker, error) {
	opts := []client.Opt{client.FromEnv}

	if config.Host != "" {
		opts = append(opts, client.WithHost(config.Host))
	}

	if config.APIVersion != "" {
		opts = append(opts, client.WithVersion(config.APIVersion))
	} else {
		opts = append(opts, client.WithAPIVersionNegotiation())
	}

	if config.TLS.Enabled() {
		tlsConfig, err := tlsconfig.Client(tlsconfig.Options{
			CAFile:             config.TLS.CA,
			CertFile:           config.TLS.Cert,
			KeyFile:            config.TLS.Key,
			InsecureSkipVerify: !config.TLS.Verify,
		})

		if err != nil {
			return nil, errors.Wrap(err, "failed to build engine tls configuration")
		}

		opts = append(opts, WithTLS(tlsConfig))
	}

	cli, err := client.NewClientWithOpts(opts...)

	if err != nil {
		return nil, err
	}

	return NewWithEngine(cli), nil
}

// WithTLS sets the tls configuration on the transport the client already
// built for its host, keeping the dialer chosen for the host's protocol.
func WithTLS(config *tls.Config) client.Opt {
	return func(c *client.Client) error {
		transport, ok := c.HTTPClient().Transport.(*http.Transport)

		if !ok {
			return errors.Errorf("cannot apply tls configuration to transport %T", c.HTTPClient().Transport)
		}

		transport.TLSClientConfig = config
		return nil
	}
}

func NewWithEngine(engine Engine) *Docker {
	return &Docker{
		Engine: engine,
	}
}

func (docker *Docker) Ping(ctx context.Context) error {
	_, err := docker.Engine.Ping(ctx)
	return err
}

func (docker *Docker) Close() error {
	return docker.Engine.Close()
}

func (docker *Docker) NetworkList(ctx context.Context) ([]raw.Network, error) {
	networks, err := docker.Engine.NetworkList(ctx, network.ListOptions{})

	if err != nil {
		return nil, err
	}

	result := make([]raw.Network, 0, len(networks))

	for _, n := range networks {
		result = append(result, toNetwork(n))
	}

	return result, nil
}

func (docker *Docker) NetworkRemove(ctx context.Context, name string) error {
	return docker.Engine.NetworkRemove(ctx, name)
}

func (docker *Docker) ContainerList(ctx context.Context) ([]raw.Container, error) {
	containers, err := docker.Engine.ContainerList(ctx, container.ListOptions{All: true})

	if err != nil {
		return nil, err
	}

	result := make([]raw.Container, 0, len(containers))

	for _, c := range containers {
		result = append(result, toContainer(c))
	}

	return result, nil
}

func (docker *Docker) ContainerRemove(ctx context.Context, name string) error {
	return docker.Engine.ContainerRemove(ctx, name, container.RemoveOptions{})
}

func (docker *Docker) ImageList(ctx context.Context) ([]raw.Image, error) {
	images, err := docker.Engine.ImageList(ctx, image.ListOptions{})

	if err != nil {
		return nil, err
	}

	result := make([]raw.Image, 0, len(images))

	for _, i := range images {
		result = append(result, toImage(i))
	}

	return result, nil
}

func (docker *Docker) ImageRemove(ctx context.Context, name string) error {
	_, err := docker.Engine.ImageRemove(ctx, name, image.RemoveOptions{})
	return err
}

func (docker *Docker) VolumeList(ctx context.Context) ([]raw.Volume, error) {
	response, err := docker.Engine.VolumeList(ctx, volume.ListOptions{})

	if err != nil {
		return nil, err
	}

	result := make([]raw.Volume, 0, len(response.Volumes))

	for _, v := range response.Volumes {
		if v == nil {
			continue
		}

		result = append(result, toVolume(*v))
	}

	return result, nil
}

func (docker *Docker) VolumeRemove(ctx context.Context, name string) error {
	return docker.Engine.VolumeRemove(ctx, name, false)
}
