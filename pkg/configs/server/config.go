package server

// Config is the kinoplexd server configuration.
type Config struct {
	// port to listen on.
	Port string `yaml:"port"`

	// path of the site database file.
	Database string `yaml:"database"`

	Uniprot UniprotConfig `yaml:"uniprot"`
}

// UniprotConfig configures the UniProt REST client.
type UniprotConfig struct {
	// API root. Empty = the public UniProtKB endpoint.
	BaseURL string `yaml:"baseUrl"`

	// request timeout in seconds. 0 = client default.
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}
