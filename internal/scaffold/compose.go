package scaffold

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// composeFile models the subset of the compose schema the workspace uses.
type composeFile struct {
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]*struct{}      `yaml:"volumes"`
}

type composeService struct {
	Image         string   `yaml:"image"`
	ContainerName string   `yaml:"container_name"`
	StdinOpen     bool     `yaml:"stdin_open"`
	TTY           bool     `yaml:"tty"`
	Restart       string   `yaml:"restart"`
	WorkingDir    string   `yaml:"working_dir"`
	Environment   []string `yaml:"environment"`
	Volumes       []string `yaml:"volumes"`
	Entrypoint    []string `yaml:"entrypoint,flow"`
	Command       []string `yaml:"command"`
}

// startupScript runs inside the container: install the CLI fresh, then
// hand the terminal over to it.
const startupScript = `echo "Installing Claude Code ..."
npm install -g @anthropic-ai/claude-code --loglevel=warn
echo "Launching ..."
exec claude
`

// RenderCompose produces the workspace compose manifest: one service on
// the given image, a bind-mounted working directory and two named volumes
// that keep CLI state and the npm cache across container restarts.
func RenderCompose(image string) ([]byte, error) {
	manifest := composeFile{
		Services: map[string]composeService{
			"claude": {
				Image:         image,
				ContainerName: "claude-code",
				StdinOpen:     true,
				TTY:           true,
				Restart:       "unless-stopped",
				WorkingDir:    "/workspace",
				Environment:   []string{EnvKey + "=${" + EnvKey + "}"},
				Volumes: []string{
					"./" + WorkDirName + ":/workspace",
					"claude-config:/root/.claude",
					"npm-cache:/root/.npm",
				},
				Entrypoint: []string{"/bin/sh", "-c"},
				Command:    []string{startupScript},
			},
		},
		Volumes: map[string]*struct{}{
			"claude-config": nil,
			"npm-cache":     nil,
		},
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("marshalling compose manifest: %w", err)
	}
	return data, nil
}
