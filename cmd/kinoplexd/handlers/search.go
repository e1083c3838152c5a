package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apierr "github.com/kinoplex/kinoplex/pkg/api/types/errors"
	apiproteins "github.com/kinoplex/kinoplex/pkg/api/types/proteins"
	kdb "github.com/kinoplex/kinoplex/pkg/db"
	"github.com/kinoplex/kinoplex/pkg/utils/slices"
)

// autocomplete responses are bounded; nobody scrolls 500 suggestions.
const searchLimit = 50

// SearchHandler powers the search box suggestions.
//
// Queries shorter than 2 characters get an empty list, not an error:
// matching everything would overwhelm both the store and the user.
func SearchHandler(dbProtein kdb.ProteinInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		query := strings.TrimSpace(c.QueryParam("q"))
		if len(query) < 2 {
			return c.JSON(http.StatusOK, []apiproteins.Summary{})
		}

		found, err := dbProtein.Search(ctx, query, searchLimit)
		if err != nil {
			return apierr.InternalServerError(err)
		}

		return c.JSON(http.StatusOK, slices.Map(found, apiproteins.ComposeSummary))
	}
}
