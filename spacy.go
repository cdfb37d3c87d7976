package ideadensity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"al.essio.dev/pkg/shellescape"

	"github.com/docker/docker/api/types/container"
)

const (
	// ProjectName is the compose project the dependency parser runs under.
	ProjectName = "ideadensity"
	// ContainerName is the container queried for parses.
	ContainerName = "ideadensity-spacy-1"

	DefaultQueryTimeout = 45 * time.Second
)

var errNoJSONFound = fmt.Errorf("no valid JSON line found in output")

// pySnippet turns a text given as argv[1] into one JSON line of parsed
// sentences. Head and i are sentence-relative so each sentence stands alone.
const pySnippet = `
import json, sys
import spacy
nlp = spacy.load("en_core_web_sm")
doc = nlp(sys.argv[1])
out = []
for sent in doc.sents:
    start = sent.start
    out.append({"tokens": [
        {"text": t.text, "tag": t.tag_, "pos": t.pos_, "dep": t.dep_,
         "head": t.head.i - start, "i": t.i - start,
         "is_punct": t.is_punct, "is_space": t.is_space}
        for t in sent]})
print(json.dumps(out))
`

// SpacyManager runs dependency parses against a Dockerized spaCy model and
// manages the container lifecycle. Create one with NewManager, or use the
// package-level functions which share a lazily created default instance.
type SpacyManager struct {
	docker        *Docker
	projectName   string
	containerName string
	QueryTimeout  time.Duration
}

type ManagerOption func(*SpacyManager)

// WithProjectName overrides the compose project name, allowing several
// independent parser stacks side by side.
func WithProjectName(name string) ManagerOption {
	return func(sm *SpacyManager) {
		sm.projectName = name
	}
}

// WithContainerName overrides the container queried for parses.
func WithContainerName(name string) ManagerOption {
	return func(sm *SpacyManager) {
		sm.containerName = name
	}
}

// WithQueryTimeout overrides the per-query timeout.
func WithQueryTimeout(d time.Duration) ManagerOption {
	return func(sm *SpacyManager) {
		sm.QueryTimeout = d
	}
}

func NewManager(ctx context.Context, opts ...ManagerOption) (*SpacyManager, error) {
	sm := &SpacyManager{
		projectName:   ProjectName,
		containerName: ContainerName,
		QueryTimeout:  DefaultQueryTimeout,
	}
	for _, opt := range opts {
		opt(sm)
	}
	docker, err := NewDocker(ctx, sm.projectName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker service: %w", err)
	}
	sm.docker = docker
	return sm, nil
}

// Init ensures the parser containers are built, up, and ready to serve.
func (sm *SpacyManager) Init(ctx context.Context) error {
	return sm.docker.Initialize()
}

// InitQuiet is Init with container log output suppressed.
func (sm *SpacyManager) InitQuiet(ctx context.Context) error {
	sm.docker.logger.Quiet = true
	return sm.docker.Initialize()
}

// InitRecreate is Init but forces a rebuild of the containers first.
func (sm *SpacyManager) InitRecreate(ctx context.Context) error {
	sm.docker.forceRebuild = true
	return sm.docker.Initialize()
}

func (sm *SpacyManager) Stop(ctx context.Context) error {
	return sm.docker.Stop()
}

func (sm *SpacyManager) Close() error {
	return sm.docker.Close()
}

// Parse runs the dependency parser over text and returns one DepSentence per
// sentence of the input.
func (sm *SpacyManager) Parse(ctx context.Context, text string) ([]DepSentence, error) {
	Logger.Debug().
		Str("container", sm.containerName).
		Str("text", stringCapLen(text, 100)).
		Msg("requesting dependency parse")

	queryCtx, cancel := context.WithTimeout(ctx, sm.QueryTimeout)
	defer cancel()

	client, err := sm.docker.GetClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get Docker client: %w", err)
	}

	containerInfo, err := client.ContainerInspect(queryCtx, sm.containerName)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect container: %w", err)
	}
	if !containerInfo.State.Running {
		return nil, fmt.Errorf("container %s is not running", sm.containerName)
	}

	execCommand := fmt.Sprintf("python3 -c %s %s",
		shellescape.Quote(pySnippet), safe(text))
	execConfig := container.ExecOptions{
		User:         containerInfo.Config.User,
		Cmd:          []string{"bash", "-c", execCommand},
		AttachStdout: true,
		AttachStderr: true,
		Tty:          false,
	}

	exec, err := client.ContainerExecCreate(queryCtx, sm.containerName, execConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create exec: %w", err)
	}

	resp, err := client.ContainerExecAttach(queryCtx, exec.ID, container.ExecStartOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to attach to exec: %w", err)
	}
	defer resp.Close()

	output, err := extractJSONFromDockerOutput(queryCtx, resp.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read exec output: %w", err)
	}

	inspect, err := client.ContainerExecInspect(queryCtx, exec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect exec: %w", err)
	}
	if inspect.ExitCode != 0 {
		return nil, fmt.Errorf("parser failed with exit code %d: %s",
			inspect.ExitCode, stringCapLen(string(output), 500))
	}

	var sents []DepSentence
	if err := json.Unmarshal(output, &sents); err != nil {
		return nil, fmt.Errorf("failed to decode parser output: %w", err)
	}
	return sents, nil
}

// Tag implements Tagger on top of the dependency parser, so the counting
// rules can run on spaCy tags instead of the embedded model.
func (sm *SpacyManager) Tag(ctx context.Context, text string) ([]TaggedWord, error) {
	sents, err := sm.Parse(ctx, text)
	if err != nil {
		return nil, err
	}
	var tagged []TaggedWord
	for _, s := range sents {
		for _, t := range s.Tokens {
			if t.IsSpace {
				continue
			}
			tagged = append(tagged, TaggedWord{Token: t.Text, Tag: t.Tag})
		}
	}
	return tagged, nil
}

// Depid parses text and scores it with the DEPID algorithm.
func (sm *SpacyManager) Depid(ctx context.Context, text string, opts DepidOptions) (DepidResult, error) {
	if strings.TrimSpace(text) == "" {
		return DepidResult{}, nil
	}
	sents, err := sm.Parse(ctx, text)
	if err != nil {
		return DepidResult{}, err
	}
	return DepidFromSentences(sents, opts), nil
}

// safe escapes special characters in the input text for shell command usage.
func safe(s string) string {
	s = shellescape.Quote(s)
	// leading "-" causes the string to be identified by the CLI as a serie of short flags
	return strings.TrimPrefix(s, "-")
}

func stringCapLen(s string, max int) string {
	trimmed := false
	for len(s) > max {
		s = s[:len(s)-1]
		trimmed = true
	}
	if trimmed {
		s += "…"
	}
	return s
}

var (
	defaultManager   *SpacyManager
	defaultManagerMu sync.Mutex
)

func getOrCreateDefaultManager(ctx context.Context) (*SpacyManager, error) {
	defaultManagerMu.Lock()
	defer defaultManagerMu.Unlock()
	if defaultManager == nil {
		mgr, err := NewManager(ctx)
		if err != nil {
			return nil, err
		}
		defaultManager = mgr
	}
	return defaultManager, nil
}

// Init readies the default manager's containers.
func Init(ctx context.Context) error {
	mgr, err := getOrCreateDefaultManager(ctx)
	if err != nil {
		return err
	}
	return mgr.Init(ctx)
}

// InitQuiet readies the default manager's containers without log output.
func InitQuiet(ctx context.Context) error {
	mgr, err := getOrCreateDefaultManager(ctx)
	if err != nil {
		return err
	}
	return mgr.InitQuiet(ctx)
}

// Close shuts down the default manager, if one was created.
func Close() error {
	defaultManagerMu.Lock()
	defer defaultManagerMu.Unlock()
	if defaultManager == nil {
		return nil
	}
	err := defaultManager.Close()
	defaultManager = nil
	return err
}

// DepidWithContext scores text with the default manager.
func DepidWithContext(ctx context.Context, text string, opts DepidOptions) (DepidResult, error) {
	mgr, err := getOrCreateDefaultManager(ctx)
	if err != nil {
		return DepidResult{}, err
	}
	return mgr.Depid(ctx, text, opts)
}

// Depid is the backward compatible version that creates a new background context.
func Depid(text string, opts DepidOptions) (DepidResult, error) {
	return DepidWithContext(context.Background(), text, opts)
}
