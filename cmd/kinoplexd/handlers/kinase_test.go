package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kinoplex/kinoplex/cmd/kinoplexd/handlers"
	httptestutil "github.com/kinoplex/kinoplex/internal/testutils/http"
	apiproteins "github.com/kinoplex/kinoplex/pkg/api/types/proteins"
	kdb "github.com/kinoplex/kinoplex/pkg/db"
	"github.com/kinoplex/kinoplex/pkg/db/mocks"
	"github.com/kinoplex/kinoplex/pkg/utils/cmp"
)

func TestKinaseProfileHandler(t *testing.T) {
	t.Run("it returns the profile in store order", func(t *testing.T) {
		mockDB := mocks.NewProteinInterface()
		mockDB.Impl.KinaseProfile = func(ctx context.Context, identifier string, kinase string) ([]kdb.KinaseSite, error) {
			return []kdb.KinaseSite{
				{Position: 326, SiteID: "P31749_326", Residue: kdb.Serine, Score: 97.0},
				{Position: 308, SiteID: "P31749_308", Residue: kdb.Threonine, Score: 85.5, Phosphocompetent: true},
			}, nil
		}

		e := echo.New()
		c, resp := httptestutil.Get(e, "/api/protein/P31749/kinase/CDK2")
		c.SetParamNames("identifier", "kinase")
		c.SetParamValues("P31749", "CDK2")
		testee := handlers.KinaseProfileHandler(mockDB)

		if err := testee(c); err != nil {
			t.Fatal(err)
		}
		if resp.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", resp.Code)
		}

		actual := []apiproteins.KinaseSite{}
		if err := json.Unmarshal(resp.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		expected := []apiproteins.KinaseSite{
			{Position: 326, Site: "P31749_326", Residue: "S", Score: 97.0},
			{Position: 308, Site: "P31749_308", Residue: "T", Score: 85.5, Phosphocompetent: true},
		}
		if !cmp.SliceEq(actual, expected) {
			t.Errorf("unexpected response:\ngot  %+v\nwant %+v", actual, expected)
		}

		if calls := mockDB.Calls.KinaseProfile; calls.Times() != 1 ||
			calls[0].Identifier != "P31749" || calls[0].Kinase != "CDK2" {
			t.Errorf("unexpected query to the store: %+v", calls)
		}
	})

	t.Run("an unknown protein is 404", func(t *testing.T) {
		mockDB := mocks.NewProteinInterface()
		mockDB.Impl.KinaseProfile = func(ctx context.Context, identifier string, kinase string) ([]kdb.KinaseSite, error) {
			return nil, kdb.ErrMissing
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/protein/NOPE/kinase/CDK2")
		c.SetParamNames("identifier", "kinase")
		c.SetParamValues("NOPE", "CDK2")
		testee := handlers.KinaseProfileHandler(mockDB)

		err := testee(c)
		httperr := new(echo.HTTPError)
		if !errors.As(err, &httperr) || httperr.Code != http.StatusNotFound {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("an unknown kinase is 404, not an empty list", func(t *testing.T) {
		mockDB := mocks.NewProteinInterface()
		mockDB.Impl.KinaseProfile = func(ctx context.Context, identifier string, kinase string) ([]kdb.KinaseSite, error) {
			return []kdb.KinaseSite{}, nil
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/protein/P31749/kinase/NOSUCH")
		c.SetParamNames("identifier", "kinase")
		c.SetParamValues("P31749", "NOSUCH")
		testee := handlers.KinaseProfileHandler(mockDB)

		err := testee(c)
		httperr := new(echo.HTTPError)
		if !errors.As(err, &httperr) || httperr.Code != http.StatusNotFound {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("a store failure is an internal error", func(t *testing.T) {
		mockDB := mocks.NewProteinInterface()
		mockDB.Impl.KinaseProfile = func(ctx context.Context, identifier string, kinase string) ([]kdb.KinaseSite, error) {
			return nil, errors.New("fake error")
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/protein/P31749/kinase/CDK2")
		c.SetParamNames("identifier", "kinase")
		c.SetParamValues("P31749", "CDK2")
		testee := handlers.KinaseProfileHandler(mockDB)

		err := testee(c)
		httperr := new(echo.HTTPError)
		if !errors.As(err, &httperr) || httperr.Code != http.StatusInternalServerError {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
