package mockuniprot

import (
	"context"
	"errors"

	"github.com/kinoplex/kinoplex/pkg/uniprot"
)

type Service struct {
	Impl struct {
		Get       func(context.Context, string) (uniprot.Info, error)
		Motif     func(context.Context, string, int, int) (uniprot.Motif, error)
		ResidueAt func(context.Context, string, int) (string, error)
	}
	Calls struct {
		Get   []struct{ Accession string }
		Motif []struct {
			Accession string
			Position  int
			Window    int
		}
		ResidueAt []struct {
			Accession string
			Position  int
		}
	}
}

func New() *Service {
	return &Service{}
}

var _ uniprot.Service = &Service{}

func (s *Service) Get(ctx context.Context, accession string) (uniprot.Info, error) {
	s.Calls.Get = append(s.Calls.Get, struct{ Accession string }{Accession: accession})
	if s.Impl.Get != nil {
		return s.Impl.Get(ctx, accession)
	}
	panic(errors.New("it should not be called"))
}

func (s *Service) Motif(ctx context.Context, accession string, position int, window int) (uniprot.Motif, error) {
	s.Calls.Motif = append(s.Calls.Motif, struct {
		Accession string
		Position  int
		Window    int
	}{
		Accession: accession, Position: position, Window: window,
	})
	if s.Impl.Motif != nil {
		return s.Impl.Motif(ctx, accession, position, window)
	}
	panic(errors.New("it should not be called"))
}

func (s *Service) ResidueAt(ctx context.Context, accession string, position int) (string, error) {
	s.Calls.ResidueAt = append(s.Calls.ResidueAt, struct {
		Accession string
		Position  int
	}{
		Accession: accession, Position: position,
	})
	if s.Impl.ResidueAt != nil {
		return s.Impl.ResidueAt(ctx, accession, position)
	}
	panic(errors.New("it should not be called"))
}
