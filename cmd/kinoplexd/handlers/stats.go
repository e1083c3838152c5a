package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apierr "github.com/kinoplex/kinoplex/pkg/api/types/errors"
	apiproteins "github.com/kinoplex/kinoplex/pkg/api/types/proteins"
	kdb "github.com/kinoplex/kinoplex/pkg/db"
)

// StatsHandler returns store-wide aggregates: protein and site counts and
// the known kinase names per residue class.
func StatsHandler(dbProtein kdb.ProteinInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		stats, err := dbProtein.Stats(ctx)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, apiproteins.ComposeStats(stats))
	}
}
