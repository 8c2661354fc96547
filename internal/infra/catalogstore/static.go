package catalogstore

import (
	"context"
	_ "embed"
	"encoding/json"
	"os"

	"tidybook/internal/domain/catalog"
	"tidybook/internal/infra"
)

//go:embed catalog.json
var embeddedCatalog []byte

// Static serves Service records decoded once at construction. It backs the
// default deployment where the catalog ships with the binary.
type Static struct {
	ordered []*catalog.Service
	byID    map[string]*catalog.Service
}

// NewStatic builds the store from the embedded catalog data.
func NewStatic() (*Static, error) {
	return newStaticFromJSON(embeddedCatalog)
}

// NewStaticFromFile builds the store from an external catalog file,
// letting deployments override the embedded data without a rebuild.
func NewStaticFromFile(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read catalog file", err, infra.KindBadData)
	}
	return newStaticFromJSON(raw)
}

func newStaticFromJSON(raw []byte) (*Static, error) {
	var records []catalog.ServiceData
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to decode catalog data", err, infra.KindBadData)
	}

	ordered := make([]*catalog.Service, 0, len(records))
	byID := make(map[string]*catalog.Service, len(records))
	for _, record := range records {
		svc, err := catalog.NewService(record)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid catalog record "+record.ID, err, infra.KindBadData)
		}
		ordered = append(ordered, svc)
		byID[svc.ID()] = svc
	}

	return &Static{ordered: ordered, byID: byID}, nil
}

func (s *Static) All(_ context.Context) ([]*catalog.Service, error) {
	return append([]*catalog.Service(nil), s.ordered...), nil
}

func (s *Static) FindByID(_ context.Context, id string) (*catalog.Service, error) {
	svc, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return svc, nil
}
