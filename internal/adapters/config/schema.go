package config

// settingsDTO is the on-disk shape of shipit.yaml.
type settingsDTO struct {
	Repository   string            `yaml:"repository"`
	Branch       string            `yaml:"branch"`
	Worktree     string            `yaml:"worktree"`
	Manifest     string            `yaml:"manifest"`
	Hash         string            `yaml:"hash"`
	Concurrency  int               `yaml:"concurrency"`
	CacheControl string            `yaml:"cacheControl"`
	ContentTypes map[string]string `yaml:"contentTypes"`
	PushManifest bool              `yaml:"pushManifest"`
}
