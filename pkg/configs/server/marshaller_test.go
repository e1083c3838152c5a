package server_test

import (
	"testing"

	"github.com/kinoplex/kinoplex/pkg/configs/server"
	"github.com/kinoplex/kinoplex/pkg/utils/try"
)

func TestUnmarshal(t *testing.T) {
	t.Run("it reads a full config", func(t *testing.T) {
		yaml := `
port: "8080"
database: /data/kinoplex.db
uniprot:
    baseUrl: https://rest.uniprot.org/uniprotkb
    timeoutSeconds: 15
`
		actual := try.To(server.Unmarshal([]byte(yaml))).OrFatal(t)

		if actual.Port != "8080" {
			t.Errorf("unexpected port: %q", actual.Port)
		}
		if actual.Database != "/data/kinoplex.db" {
			t.Errorf("unexpected database: %q", actual.Database)
		}
		if actual.Uniprot.BaseURL != "https://rest.uniprot.org/uniprotkb" {
			t.Errorf("unexpected uniprot base url: %q", actual.Uniprot.BaseURL)
		}
		if actual.Uniprot.TimeoutSeconds != 15 {
			t.Errorf("unexpected uniprot timeout: %d", actual.Uniprot.TimeoutSeconds)
		}
	})

	t.Run("the uniprot block is optional", func(t *testing.T) {
		yaml := `
port: "8080"
database: /data/kinoplex.db
`
		actual := try.To(server.Unmarshal([]byte(yaml))).OrFatal(t)

		if actual.Uniprot.BaseURL != "" || actual.Uniprot.TimeoutSeconds != 0 {
			t.Errorf("unexpected uniprot config: %+v", actual.Uniprot)
		}
	})

	t.Run("broken yaml is an error", func(t *testing.T) {
		if _, err := server.Unmarshal([]byte(`:{]`)); err == nil {
			t.Error("no error occurred")
		}
	})
}
