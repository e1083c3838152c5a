package mocks

import (
	"context"
	"errors"

	kdb "github.com/kinoplex/kinoplex/pkg/db"
)

type ProteinInterface struct {
	Impl struct {
		Get           func(context.Context, string) (kdb.Protein, error)
		Sites         func(context.Context, string) ([]kdb.Site, error)
		Search        func(context.Context, string, int) ([]kdb.Protein, error)
		KinaseProfile func(context.Context, string, string) ([]kdb.KinaseSite, error)
		Stats         func(context.Context) (kdb.Stats, error)
	}
	Calls struct {
		Get    CallLog[struct{ Identifier string }]
		Sites  CallLog[struct{ Identifier string }]
		Search CallLog[struct {
			Query string
			Limit int
		}]
		KinaseProfile CallLog[struct {
			Identifier string
			Kinase     string
		}]
		Stats CallLog[struct{}]
	}
}

func NewProteinInterface() *ProteinInterface {
	return &ProteinInterface{}
}

var _ kdb.ProteinInterface = &ProteinInterface{}

func (pi *ProteinInterface) Get(ctx context.Context, identifier string) (kdb.Protein, error) {
	pi.Calls.Get = append(pi.Calls.Get, struct{ Identifier string }{Identifier: identifier})
	if pi.Impl.Get != nil {
		return pi.Impl.Get(ctx, identifier)
	}
	panic(errors.New("it should not be called"))
}

func (pi *ProteinInterface) Sites(ctx context.Context, identifier string) ([]kdb.Site, error) {
	pi.Calls.Sites = append(pi.Calls.Sites, struct{ Identifier string }{Identifier: identifier})
	if pi.Impl.Sites != nil {
		return pi.Impl.Sites(ctx, identifier)
	}
	panic(errors.New("it should not be called"))
}

func (pi *ProteinInterface) Search(ctx context.Context, query string, limit int) ([]kdb.Protein, error) {
	pi.Calls.Search = append(pi.Calls.Search, struct {
		Query string
		Limit int
	}{
		Query: query, Limit: limit,
	})
	if pi.Impl.Search != nil {
		return pi.Impl.Search(ctx, query, limit)
	}
	panic(errors.New("it should not be called"))
}

func (pi *ProteinInterface) KinaseProfile(ctx context.Context, identifier string, kinase string) ([]kdb.KinaseSite, error) {
	pi.Calls.KinaseProfile = append(pi.Calls.KinaseProfile, struct {
		Identifier string
		Kinase     string
	}{
		Identifier: identifier, Kinase: kinase,
	})
	if pi.Impl.KinaseProfile != nil {
		return pi.Impl.KinaseProfile(ctx, identifier, kinase)
	}
	panic(errors.New("it should not be called"))
}

func (pi *ProteinInterface) Stats(ctx context.Context) (kdb.Stats, error) {
	pi.Calls.Stats = append(pi.Calls.Stats, struct{}{})
	if pi.Impl.Stats != nil {
		return pi.Impl.Stats(ctx)
	}
	panic(errors.New("it should not be called"))
}
