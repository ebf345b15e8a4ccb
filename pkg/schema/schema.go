package schema

// Config is the resolved configuration of a detect-changes run.
// It is populated once at startup from flags, environment and the optional config file.
type Config struct {
	Modules Modules  `yaml:"modules" json:"modules" mapstructure:"modules"`
	Git     Git      `yaml:"git" json:"git" mapstructure:"git"`
	Env     EnvFiles `yaml:"env" json:"env" mapstructure:"env"`
	CI      CI       `yaml:"ci" json:"ci" mapstructure:"ci"`
	Logs    Logs     `yaml:"logs" json:"logs" mapstructure:"logs"`
}

// Modules controls how changed paths are mapped to module names.
type Modules struct {
	// Manual is the raw comma-separated override list.
	Manual string `yaml:"manual" json:"manual" mapstructure:"manual"`
	// Directory is the prefix convention, e.g. "apps/". Empty means root level.
	Directory string `yaml:"directory" json:"directory" mapstructure:"directory"`
	// Layout selects the default Directory when none is configured: "apps" or "root".
	Layout  string   `yaml:"layout" json:"layout" mapstructure:"layout"`
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty" mapstructure:"exclude"`
}

type Git struct {
	Backend string `yaml:"backend" json:"backend" mapstructure:"backend"`
	BaseRef string `yaml:"base_ref" json:"base_ref" mapstructure:"base_ref"`
	HeadRef string `yaml:"head_ref" json:"head_ref" mapstructure:"head_ref"`
	RepoDir string `yaml:"repo_dir" json:"repo_dir" mapstructure:"repo_dir"`
}

type EnvFiles struct {
	Disabled bool   `yaml:"disabled" json:"disabled" mapstructure:"disabled"`
	Dir      string `yaml:"dir" json:"dir" mapstructure:"dir"`
}

type CI struct {
	OutputFile  string `yaml:"output_file" json:"output_file" mapstructure:"output_file"`
	SummaryFile string `yaml:"summary_file" json:"summary_file" mapstructure:"summary_file"`
	Summary     bool   `yaml:"summary" json:"summary" mapstructure:"summary"`
}

type Logs struct {
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}
