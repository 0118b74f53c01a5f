// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package gateway

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/contentone/contentone/internal/observability"
	"github.com/contentone/contentone/internal/websession"
	"github.com/contentone/contentone/pkg/errutil"
)

const (
	tracerName   = "github.com/contentone/contentone/internal/gateway"
	maxBodyBytes = 1 << 20

	// labelUnknown names requests whose root field the schema does not define.
	labelUnknown = "unknown"
)

var (
	errMalformedBody      = errors.New("request body must be a JSON object")
	errMalformedVariables = errors.New("variables must be a JSON object")
	errMissingQuery       = errors.New("query is required")
	errMethodNotAllowed   = errors.New("method not allowed")
)

type graphqlRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

type errorBody struct {
	Errors []errorMessage `json:"errors"`
}

type errorMessage struct {
	Message string `json:"message"`
}

// Handler serves GraphQL over HTTP. Each request gets its own session,
// which is committed before the response body is written.
type Handler struct {
	schema     graphql.Schema
	sessions   *websession.Store
	cookieName string
	metrics    *observability.Metrics
	logger     *slog.Logger
	tracer     trace.Tracer
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, status, err := decodeRequest(w, r)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	doc, parseErr := parser.Parse(parser.ParseParams{Source: req.Query})
	if parseErr == nil && r.Method == http.MethodGet && isMutation(doc, req.OperationName) {
		writeError(w, http.StatusMethodNotAllowed, "mutations require POST")
		return
	}

	op := rootFieldLabel(h.schema, doc, req.OperationName)
	ctx, span := h.tracer.Start(r.Context(), "graphql."+op)
	defer span.End()
	if name := operationName(doc, req.OperationName); name != "" {
		span.SetAttributes(attribute.String("graphql.operation.name", name))
	}
	r = r.WithContext(ctx)

	sess, err := websession.Bind(w, r, h.sessions, h.cookieName)
	if err != nil {
		errutil.LogErrorContext(ctx, h.logger, "session load failed", err)
		span.SetStatus(codes.Error, "session load failed")
		writeError(w, http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	st := &requestState{session: sess}
	start := time.Now()
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        withState(ctx, st),
	})

	outcome := observability.OutcomeOK
	switch {
	case result.HasErrors():
		outcome = observability.OutcomeError
		span.SetStatus(codes.Error, result.Errors[0].Message)
	case st.fieldErrors.Load():
		outcome = observability.OutcomeFieldErrors
	}
	h.metrics.ObserveGraphQL(op, outcome, time.Since(start))

	if err := sess.Commit(); err != nil {
		errutil.LogErrorContext(ctx, h.logger, "session save failed", err)
		span.SetStatus(codes.Error, "session save failed")
		writeError(w, http.StatusInternalServerError, ErrInternal.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (graphqlRequest, int, error) {
	var req graphqlRequest
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if v := q.Get("variables"); v != "" {
			if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
				return req, http.StatusBadRequest, errMalformedVariables
			}
		}
	case http.MethodPost:
		body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			return req, http.StatusBadRequest, errMalformedBody
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		return req, http.StatusMethodNotAllowed, errMethodNotAllowed
	}
	if req.Query == "" {
		return req, http.StatusBadRequest, errMissingQuery
	}
	return req, 0, nil
}

// operationName returns the name of the operation that will run, or "" when
// it is anonymous or the document has no operation by the requested name.
func operationName(doc *ast.Document, requested string) string {
	if op := selectOperation(doc, requested); op != nil && op.Name != nil {
		return op.Name.Value
	}
	return ""
}

// rootFieldLabel names a request for spans and metrics. The label is the
// first root field of the selected operation and is only taken from the
// schema's own field set, so clients cannot mint new label values.
func rootFieldLabel(schema graphql.Schema, doc *ast.Document, requested string) string {
	op := selectOperation(doc, requested)
	if op == nil || op.SelectionSet == nil {
		return labelUnknown
	}

	var root *graphql.Object
	switch op.Operation {
	case ast.OperationTypeQuery:
		root = schema.QueryType()
	case ast.OperationTypeMutation:
		root = schema.MutationType()
	}
	if root == nil {
		return labelUnknown
	}

	for _, sel := range op.SelectionSet.Selections {
		field, ok := sel.(*ast.Field)
		if !ok || field.Name == nil {
			continue
		}
		if _, defined := root.Fields()[field.Name.Value]; defined {
			return field.Name.Value
		}
		return labelUnknown
	}
	return labelUnknown
}

func isMutation(doc *ast.Document, requested string) bool {
	op := selectOperation(doc, requested)
	return op != nil && op.Operation == ast.OperationTypeMutation
}

func selectOperation(doc *ast.Document, requested string) *ast.OperationDefinition {
	if doc == nil {
		return nil
	}
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if requested == "" || (op.Name != nil && op.Name.Value == requested) {
			return op
		}
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Errors: []errorMessage{{Message: msg}}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // nothing to do once the header is sent
	json.NewEncoder(w).Encode(v)
}

func newTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
