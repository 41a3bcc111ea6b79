package seed

import (
	"os"

	"github.com/kleverretail/retail-cloud/internal/domain"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func domainStore(code, name string) domain.Store {
	return domain.Store{Code: code, Name: name}
}
