package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/types"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/repository/memory"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/usecase"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/utils/errutil"
)

// selectedIndex parses the optional "index" query parameter. A missing
// parameter means no point has been selected yet and yields nil.
func selectedIndex(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("index")
	if raw == "" {
		return nil, nil
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "index must be an integer", goerr.V("index", raw))
	}
	return &index, nil
}

// resolverStatus maps a selection resolver error to an HTTP status. An
// out-of-range index is a contract violation between frontend and resolver,
// not a user input error, so it surfaces as a server error.
func resolverStatus(err error) int {
	if errors.Is(err, memory.ErrOutOfRange) {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// cloudHandler serves a freshly generated word cloud figure. The "count"
// parameter defaults to the initial cloud size when absent.
func cloudHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		size := types.DefaultCloudSize
		if raw := r.URL.Query().Get("count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "count must be an integer", goerr.V("count", raw)), http.StatusBadRequest)
				return
			}
			size = types.CloudSize(n)
		}
		if err := size.Validate(); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		figure, err := uc.Cloud.Generate(ctx, size)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
			return
		}

		respondJSON(w, r, figure)
	}
}

// describeHandler serves the description view of the selected point
func describeHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		index, err := selectedIndex(r)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		desc, err := uc.Pattern.Describe(ctx, index)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, resolverStatus(err))
			return
		}

		respondJSON(w, r, desc)
	}
}

// detailHandler serves the category detail view of the selected point
func detailHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		category := types.DetailCategory(r.URL.Query().Get("category"))
		if err := category.Validate(); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		index, err := selectedIndex(r)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		detail, err := uc.Pattern.Detail(ctx, index, category)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, resolverStatus(err))
			return
		}

		respondJSON(w, r, detail)
	}
}

// legendHandler serves the palette so the frontend can render the legend
func legendHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, uc.Palette().Legend())
	}
}
