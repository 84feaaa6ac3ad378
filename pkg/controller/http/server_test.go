package http_test

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/IceeCodee/TRAP-word-cloud/pkg/controller/http"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/model"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/types"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/repository/memory"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/usecase"
)

func newTestServer(t *testing.T) *httpctrl.Server {
	t.Helper()

	rows := make([]*model.AttackPattern, 60)
	for i := range rows {
		rows[i] = &model.AttackPattern{
			ID:          fmt.Sprintf("%d", i+1),
			Name:        fmt.Sprintf("Pattern %d", i+1),
			Description: "A description.",
			Severity:    types.SeverityMedium,
			Likelihood:  types.LikelihoodLow,
		}
	}
	rows[0].RelatedWeaknesses = "::123::456::"

	uc := usecase.New(memory.New(rows), usecase.WithRand(rand.New(rand.NewPCG(1, 1))))
	server, err := httpctrl.New(uc)
	gt.NoError(t, err).Required()
	return server
}

func doGet(t *testing.T, server *httpctrl.Server, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	server.ServeHTTP(rec, req)
	return rec
}

func TestCloudEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := doGet(t, server, "/api/cloud?count=30")
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var figure model.Figure
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &figure))
	gt.Array(t, figure.Points).Length(30)
	gt.Value(t, figure.Points[0].Label).Equal("1")
}

func TestCloudEndpoint_DefaultCount(t *testing.T) {
	server := newTestServer(t)

	rec := doGet(t, server, "/api/cloud")
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var figure model.Figure
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &figure))
	gt.Array(t, figure.Points).Length(types.DefaultCloudSize.Int())
}

func TestCloudEndpoint_InvalidCount(t *testing.T) {
	server := newTestServer(t)

	gt.Value(t, doGet(t, server, "/api/cloud?count=25").Code).Equal(http.StatusBadRequest)
	gt.Value(t, doGet(t, server, "/api/cloud?count=abc").Code).Equal(http.StatusBadRequest)
}

func TestDescribeEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := doGet(t, server, "/api/describe?index=0")
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var desc model.PatternDescription
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &desc))
	gt.Value(t, desc.Name).Equal("Pattern 1")
	gt.String(t, desc.Link).Contains("https://capec.mitre.org/data/definitions/1")
}

func TestDescribeEndpoint_NoSelection(t *testing.T) {
	server := newTestServer(t)

	rec := doGet(t, server, "/api/describe")
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var desc model.PatternDescription
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &desc))
	gt.Value(t, desc.Message).Equal(usecase.MsgSelectPrompt)
}

func TestDescribeEndpoint_Errors(t *testing.T) {
	server := newTestServer(t)

	// Out-of-range index is a contract violation, not a user input error
	gt.Value(t, doGet(t, server, "/api/describe?index=999").Code).Equal(http.StatusInternalServerError)
	gt.Value(t, doGet(t, server, "/api/describe?index=abc").Code).Equal(http.StatusBadRequest)
}

func TestDetailEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := doGet(t, server, "/api/detail?category=weaknesses&index=0")
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var detail model.PatternDetail
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	gt.Array(t, detail.Links).Length(2)
}

func TestDetailEndpoint_NoData(t *testing.T) {
	server := newTestServer(t)

	rec := doGet(t, server, "/api/detail?category=mitigations&index=1")
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var detail model.PatternDetail
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	gt.Value(t, detail.Message).Equal(usecase.MsgNoMitigations)
}

func TestDetailEndpoint_InvalidCategory(t *testing.T) {
	server := newTestServer(t)

	gt.Value(t, doGet(t, server, "/api/detail?category=bogus&index=0").Code).Equal(http.StatusBadRequest)
	gt.Value(t, doGet(t, server, "/api/detail").Code).Equal(http.StatusBadRequest)
}

func TestLegendEndpoint(t *testing.T) {
	server := newTestServer(t)

	rec := doGet(t, server, "/api/legend")
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var legend model.Legend
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &legend))
	gt.Array(t, legend.Severity).Length(len(types.AllSeverities()))
}

func TestSPAFallback(t *testing.T) {
	server := newTestServer(t)

	rec := doGet(t, server, "/")
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(rec.Body.String(), "CAPEC Word Cloud")).True()

	// Unknown paths fall back to the SPA entry point
	rec = doGet(t, server, "/no/such/page")
	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Bool(t, strings.Contains(rec.Body.String(), "CAPEC Word Cloud")).True()
}
