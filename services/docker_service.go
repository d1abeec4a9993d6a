package services

import (
	"SWJTUCTF/models"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/docker/docker/api/types"
	imagetypes "github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/api/types/swarm"
	"github.com/docker/docker/client"
	"go.uber.org/zap"
)

var ErrNoDockerImage = errors.New("challenge has no docker image")

// DockerOptions Docker 启动器配置
type DockerOptions struct {
	// Host 对外展示的靶机地址
	Host             string
	PullImages       bool
	RegistryUser     string
	RegistryPassword string
	RegistryServer   string
}

// DockerLauncher 以 Docker Swarm 服务的形式运行靶机
type DockerLauncher struct {
	cli          *client.Client
	opts         DockerOptions
	registryAuth string
	logger       *zap.Logger
}

// NewDockerLauncher 连接 Docker 并检查 Swarm 状态
func NewDockerLauncher(ctx context.Context, opts DockerOptions, logger *zap.Logger) (*DockerLauncher, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("connect docker daemon: %w", err)
	}

	info, err := cli.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("get docker info: %w", err)
	}
	if info.Swarm.LocalNodeState != swarm.LocalNodeStateActive {
		return nil, errors.New("docker is not running in swarm mode, run 'docker swarm init'")
	}

	var auth string
	if opts.RegistryUser != "" {
		auth, err = encodeRegistryAuth(opts.RegistryUser, opts.RegistryPassword, opts.RegistryServer)
		if err != nil {
			return nil, fmt.Errorf("encode registry auth: %w", err)
		}
	}

	logger.Info("docker client connected to swarm cluster", zap.String("node_id", info.Swarm.NodeID))
	return &DockerLauncher{cli: cli, opts: opts, registryAuth: auth, logger: logger}, nil
}

// encodeRegistryAuth 生成私有仓库认证串
func encodeRegistryAuth(user, pass, server string) (string, error) {
	ac := registry.AuthConfig{
		Username:      user,
		Password:      pass,
		ServerAddress: server,
	}
	b, err := json.Marshal(ac)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// ensureImage 确保镜像在本节点可用
func (l *DockerLauncher) ensureImage(ctx context.Context, ref string) error {
	pullCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	rc, err := l.cli.ImagePull(pullCtx, ref, imagetypes.PullOptions{
		RegistryAuth: l.registryAuth,
	})
	if err != nil {
		return fmt.Errorf("pull image %q: %w", ref, err)
	}
	defer rc.Close()
	_, _ = io.Copy(io.Discard, rc)
	return nil
}

// Launch 创建 Swarm 服务，Flag 通过环境变量注入
func (l *DockerLauncher) Launch(ctx context.Context, challenge models.Challenge, flag string) (LaunchResult, error) {
	if challenge.DockerImage == "" {
		return LaunchResult{}, ErrNoDockerImage
	}
	if l.opts.PullImages {
		if err := l.ensureImage(ctx, challenge.DockerImage); err != nil {
			return LaunchResult{}, err
		}
	}

	// 使用时间戳确保服务名唯一
	serviceName := fmt.Sprintf("swjtuctf-%d-%d", challenge.ID, time.Now().UnixNano())
	serviceSpec := swarm.ServiceSpec{
		Annotations: swarm.Annotations{
			Name:   serviceName,
			Labels: map[string]string{"swjtuctf.challenge": fmt.Sprint(challenge.ID)},
		},
		TaskTemplate: swarm.TaskSpec{
			ContainerSpec: &swarm.ContainerSpec{
				Image: challenge.DockerImage,
				Env:   []string{"SWJTUCTF_FLAG=" + flag, "FLAG=" + flag},
			},
			Resources: &swarm.ResourceRequirements{
				Limits: &swarm.Limit{
					MemoryBytes: 256 * 1024 * 1024,
					NanoCPUs:    500000000,
				},
			},
		},
		EndpointSpec: &swarm.EndpointSpec{
			Ports: []swarm.PortConfig{{
				Protocol:    swarm.PortConfigProtocolTCP,
				TargetPort:  uint32(challenge.DockerPort),
				PublishMode: swarm.PortConfigPublishModeIngress,
			}},
		},
	}

	resp, err := l.cli.ServiceCreate(ctx, serviceSpec, types.ServiceCreateOptions{EncodedRegistryAuth: l.registryAuth})
	if err != nil {
		return LaunchResult{}, fmt.Errorf("create service %s: %w", serviceName, err)
	}

	port, err := l.publishedPort(ctx, resp.ID)
	if err != nil {
		if rmErr := l.cli.ServiceRemove(ctx, resp.ID); rmErr != nil {
			l.logger.Warn("remove half-created service failed", zap.String("service_id", resp.ID), zap.Error(rmErr))
		}
		return LaunchResult{}, err
	}
	return LaunchResult{IP: l.opts.Host, Port: port, Handle: resp.ID}, nil
}

// publishedPort 等待 Swarm 分配对外端口
func (l *DockerLauncher) publishedPort(ctx context.Context, serviceID string) (int, error) {
	for attempt := 0; attempt < 20; attempt++ {
		service, _, err := l.cli.ServiceInspectWithRaw(ctx, serviceID, types.ServiceInspectOptions{})
		if err != nil {
			return 0, fmt.Errorf("inspect service %s: %w", serviceID, err)
		}
		for _, p := range service.Endpoint.Ports {
			if p.PublishedPort != 0 {
				return int(p.PublishedPort), nil
			}
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(250 * time.Millisecond):
		}
	}
	return 0, fmt.Errorf("service %s has no published port", serviceID)
}

// Destroy 销毁一个服务
func (l *DockerLauncher) Destroy(ctx context.Context, handle string) error {
	return l.cli.ServiceRemove(ctx, handle)
}

// Close 关闭 Docker 客户端
func (l *DockerLauncher) Close() error {
	return l.cli.Close()
}
