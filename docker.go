package ideadensity

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog/log"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/compose-spec/compose-go/v2/cli"
	"github.com/docker/cli/cli/command"
	"github.com/docker/cli/cli/flags"
	"github.com/docker/compose/v2/pkg/api"
	"github.com/docker/compose/v2/pkg/compose"
)

var DockerStartTO = 300 * time.Second

// remote hosts the Dockerized spaCy REST service the parser container is
// built from.
const remote = "https://github.com/jgontrum/spacy-api-docker.git"

// composeFile is written into the service directory when the cloned repo does
// not carry one. The spacy service stays idle between exec queries.
const composeFile = `services:
  spacy:
    build: .
    environment:
      - PORT=8080
      - LANGUAGE=en_core_web_sm
    ports:
      - "127.0.0.1:8080:8080"
`

// Docker owns the compose stack the dependency parser runs in.
type Docker struct {
	service      api.Service
	client       *client.Client
	ctx          context.Context
	logger       *SpacyLogConsumer
	projectName  string
	forceRebuild bool
}

func NewDocker(ctx context.Context, projectName string) (*Docker, error) {
	dockerCli, err := command.NewDockerCli()
	if err != nil {
		return nil, fmt.Errorf("failed to spawn Docker CLI: %v", err)
	}
	if err := dockerCli.Initialize(flags.NewClientOptions()); err != nil {
		return nil, fmt.Errorf("failed to initialize Docker CLI: %w", err)
	}

	service := compose.NewComposeService(dockerCli)

	logger := NewSpacyLogConsumer()
	logger.Prefix = projectName

	return &Docker{
		service:     service,
		ctx:         ctx,
		logger:      logger,
		projectName: projectName,
	}, nil
}

// GetClient lazily creates the raw Docker API client used for exec queries.
func (d *Docker) GetClient() (*client.Client, error) {
	if d.client != nil {
		return d.client, nil
	}
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}
	d.client = cli
	return d.client, nil
}

func (d *Docker) Initialize() error {
	stacks, err := d.service.List(d.ctx, api.ListOptions{All: true})
	if err != nil {
		return fmt.Errorf("failed to list stacks: %w", err)
	}
	for _, stack := range stacks {
		if stack.Name == d.projectName && stack.Status == api.RUNNING && !d.forceRebuild {
			log.Info().Msg("parser containers already running")
			return nil
		}
	}

	serviceDir, err := getServiceDir()
	if err != nil {
		return fmt.Errorf("failed to get service directory: %w", err)
	}
	if err := os.MkdirAll(serviceDir, 0755); err != nil {
		return fmt.Errorf("failed to create service directory: %w", err)
	}

	needsBuild, err := d.checkIfBuildNeeded(serviceDir)
	if err != nil {
		return fmt.Errorf("failed to check build status: %w", err)
	}
	if d.forceRebuild {
		needsBuild = true
	}

	if needsBuild {
		log.Info().Msg("downloading parser service repository...")
		if _, err := os.Stat(filepath.Join(serviceDir, ".git")); os.IsNotExist(err) {
			log.Info().Msg("Local repository does not exist. Cloning...")
			cloneRepo(remote, serviceDir)
		} else {
			log.Info().Msg("Local repository exists. Pulling changes...")
			pullRepo(serviceDir)
		}
	}

	composePath := filepath.Join(serviceDir, "docker-compose.yml")
	if _, err := os.Stat(composePath); os.IsNotExist(err) {
		if err := os.WriteFile(composePath, []byte(composeFile), 0644); err != nil {
			return fmt.Errorf("failed to write compose file: %w", err)
		}
	}

	options, err := cli.NewProjectOptions(
		[]string{composePath},
		cli.WithOsEnv,
		cli.WithDotEnv,
		cli.WithName(d.projectName),
		cli.WithWorkingDirectory(serviceDir),
	)
	if err != nil {
		return fmt.Errorf("failed to create project options: %w", err)
	}

	project, err := cli.ProjectFromOptions(d.ctx, options)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}

	for name, s := range project.Services {
		s.CustomLabels = map[string]string{
			api.ProjectLabel:     project.Name,
			api.ServiceLabel:     name,
			api.VersionLabel:     api.ComposeVersion,
			api.WorkingDirLabel:  project.WorkingDir,
			api.ConfigFilesLabel: strings.Join(project.ComposeFiles, ","),
			api.OneoffLabel:      "False",
		}
		project.Services[name] = s
	}

	buildOpts := api.BuildOptions{
		Pull:     true,
		Progress: "auto",
		Services: project.ServiceNames(),
	}

	if needsBuild {
		log.Info().Msg("building containers...")
		if err := d.service.Build(d.ctx, project, buildOpts); err != nil {
			log.Error().
				Err(err).
				Str("type", fmt.Sprintf("%T", err)).
				Msg("build failed")
			return fmt.Errorf("build failed: %w", err)
		}
	}

	log.Info().Msg("up-ing containers...")
	go func() {
		err := d.service.Up(d.ctx, project, api.UpOptions{
			Create: api.CreateOptions{
				Build:         &buildOpts,
				Services:      project.ServiceNames(),
				RemoveOrphans: true,
				Recreate:      api.RecreateNever,
			},
			Start: api.StartOptions{
				Wait:        true,
				WaitTimeout: DockerStartTO,
				Project:     project,
				Services:    project.ServiceNames(),
				Attach:      d.logger,
			},
		})
		if err != nil {
			d.logger.failedChan <- fmt.Errorf("container startup failed: %v", err)
		}
	}()

	log.Info().Msg("waiting for parser to initialize...")
	select {
	case <-d.logger.initChan:
		log.Info().Msg("parser initialization complete")
	case err := <-d.logger.failedChan:
		log.Info().Msg("parser initialization FAILED")
		return err
	case <-time.After(DockerStartTO):
		return fmt.Errorf("timeout waiting for parser to initialize")
	}
	close(d.logger.initChan)
	close(d.logger.failedChan)

	status, err := d.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}
	if std(status) != api.RUNNING {
		return fmt.Errorf("services failed to reach running state, current raw status: %s", status)
	}
	return nil
}

func cloneRepo(repoURL, localPath string) {
	_, err := git.PlainClone(localPath, false, &git.CloneOptions{
		URL:      repoURL,
		Progress: os.Stdout,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to clone repository")
		return
	}
	log.Info().Msg("Repository cloned successfully")
}

func pullRepo(dir string) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open repository")
		return
	}
	worktree, err := repo.Worktree()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get worktree")
		return
	}
	err = worktree.Pull(&git.PullOptions{
		RemoteName: "origin",
		Progress:   os.Stdout,
	})
	if err != nil {
		if err == git.NoErrAlreadyUpToDate {
			log.Info().Msg("Repository is already up-to-date")
		} else {
			log.Error().Err(err).Msg("Failed to pull repository")
		}
		return
	}
	log.Info().Msg("Repository updated successfully")
}

func (d *Docker) Stop() error {
	log.Info().Msg("stopping parser containers...")
	return d.service.Stop(d.ctx, d.projectName, api.StopOptions{
		Timeout: nil, // Use default timeout
	})
}

func (d *Docker) Close() error {
	if d.client != nil {
		d.client.Close()
		d.client = nil
	}
	return d.Stop()
}

func (d *Docker) Status() (string, error) {
	stacks, err := d.service.List(d.ctx, api.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to list stacks: %w", err)
	}
	for _, stack := range stacks {
		if stack.Name == d.projectName {
			return stack.Status, nil
		}
	}
	return api.UNKNOWN, nil
}

func (d *Docker) checkIfBuildNeeded(serviceDir string) (bool, error) {
	gitDir := filepath.Join(serviceDir, ".git")
	if _, err := os.Stat(gitDir); os.IsNotExist(err) {
		log.Info().Msg("Git repository not found, build needed")
		return true, nil
	}

	repo, err := git.PlainOpen(serviceDir)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to open git repository")
		return true, nil
	}
	head, err := repo.Head()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to get HEAD")
		return true, nil
	}
	origin, err := repo.Remote("origin")
	if err != nil {
		log.Warn().Err(err).Msg("Failed to get remote")
		return true, nil
	}
	err = origin.Fetch(&git.FetchOptions{Force: true})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		log.Warn().Err(err).Msg("Failed to fetch from remote")
		return true, nil
	}
	refs, err := origin.List(&git.ListOptions{})
	if err != nil {
		log.Warn().Err(err).Msg("Failed to list refs")
		return true, nil
	}
	for _, ref := range refs {
		if ref.Name().String() == "refs/heads/master" {
			if head.Hash() != ref.Hash() {
				log.Info().Msg("Local and remote HEADs differ, build needed")
				return true, nil
			}
			break
		}
	}

	// The image may be current while the container is simply stopped.
	cli, err := d.GetClient()
	if err != nil {
		return false, err
	}
	containers, err := cli.ContainerList(context.Background(), container.ListOptions{})
	if err != nil {
		return false, fmt.Errorf("failed to list containers: %w", err)
	}
	required := map[string]bool{
		d.projectName + "-spacy-1": false,
	}
	for _, c := range containers {
		for _, name := range c.Names {
			// Container names come with a leading slash, so we trim it
			cleanName := strings.TrimPrefix(name, "/")
			if _, exists := required[cleanName]; exists {
				required[cleanName] = true
			}
		}
	}
	for containerName, isRunning := range required {
		if !isRunning {
			log.Info().Str("container", containerName).Msg("Required container not running")
			return true, nil
		}
	}
	return false, nil
}

func getServiceDir() (string, error) {
	// Get the base config directory following platform conventions
	configPath, err := xdg.ConfigFile("ideadensity")
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return configPath, nil
}

// extractJSONFromDockerOutput demultiplexes an exec stream and returns the
// last stdout line that parses as JSON. The parser logs model loading chatter
// before the payload, so scanning from the end finds the result first.
func extractJSONFromDockerOutput(ctx context.Context, reader io.Reader) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	done := make(chan error, 1)
	go func() {
		_, err := stdcopy.StdCopy(&stdout, &stderr, reader)
		done <- err
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("failed to demultiplex output: %w", err)
		}
	}

	var lines []string
	scanner := bufio.NewScanner(&stdout)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan output: %w", err)
	}
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "[") || strings.HasPrefix(line, "{") {
			return []byte(line), nil
		}
	}
	return nil, fmt.Errorf("%w: stderr: %s", errNoJSONFound, stringCapLen(stderr.String(), 500))
}

// fmt of status isn't that of api constants, I've had: running(2), Unknown
func std(status string) string {
	status = strings.ToUpper(status)
	switch {
	case strings.HasPrefix(status, "RUNNING"):
		return api.RUNNING
	case strings.HasPrefix(status, "STARTING"):
		return api.STARTING
	case strings.HasPrefix(status, "UPDATING"):
		return api.UPDATING
	case strings.HasPrefix(status, "REMOVING"):
		return api.REMOVING
	case strings.HasPrefix(status, "UNKNOWN"):
		return api.UNKNOWN
	}
	return api.FAILED
}
