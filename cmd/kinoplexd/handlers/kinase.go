package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/kinoplex/kinoplex/pkg/api/types/errors"
	apiproteins "github.com/kinoplex/kinoplex/pkg/api/types/proteins"
	kdb "github.com/kinoplex/kinoplex/pkg/db"
	"github.com/kinoplex/kinoplex/pkg/utils/slices"
)

// KinaseProfileHandler returns the activity profile of a single kinase
// across all sites of a protein, ordered by score descending.
func KinaseProfileHandler(dbProtein kdb.ProteinInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		identifier := c.Param("identifier")
		kinase := c.Param("kinase")

		profile, err := dbProtein.KinaseProfile(ctx, identifier, kinase)
		if errors.Is(err, kdb.ErrMissing) {
			return apierr.NotFound("protein not found")
		} else if err != nil {
			return apierr.InternalServerError(err)
		}

		if len(profile) == 0 {
			return apierr.NotFound("no data found")
		}

		return c.JSON(http.StatusOK, slices.Map(profile, apiproteins.ComposeKinaseSite))
	}
}
