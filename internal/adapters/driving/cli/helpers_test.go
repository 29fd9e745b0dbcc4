package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsuggest/internal/adapters/driven/storage/jsondb"
	"github.com/custodia-labs/docsuggest/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docsuggest/internal/core/domain"
	coreservices "github.com/custodia-labs/docsuggest/internal/core/services"
)

// syncTrigger rebuilds inline so commands see their own writes.
type syncTrigger struct {
	suggest *coreservices.SuggestService
}

func (t *syncTrigger) Trigger(reason domain.RebuildReason) {
	_, _ = t.suggest.Rebuild(context.Background(), reason)
}

// testEnv wires real services over memory stores.
type testEnv struct {
	services *Services
	docs     *memory.DocumentStore
	users    *memory.UserStore
	blobs    *memory.BlobStore
}

func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	docStore := memory.NewDocumentStore()
	userStore := memory.NewUserStore()
	blobs := memory.NewBlobStore()

	suggest := coreservices.NewSuggestService(docStore, userStore)
	trigger := &syncTrigger{suggest: suggest}

	documents := coreservices.NewDocumentService(docStore, userStore, trigger)
	documents.SetBlobStore(blobs)

	s := &Services{
		Config:    domain.DefaultConfig(),
		Suggest:   suggest,
		Documents: documents,
		Users:     coreservices.NewUserService(userStore, docStore, trigger),
		Seed:      coreservices.NewSeedService(jsondb.File{}, userStore, docStore, trigger),
	}

	_, err := suggest.Rebuild(context.Background(), domain.RebuildStartup)
	require.NoError(t, err)

	SetServices(s)
	t.Cleanup(func() {
		SetServices(nil)
		resetFlags()
	})

	return &testEnv{services: s, docs: docStore, users: userStore, blobs: blobs}
}

// resetFlags puts package-level flag targets back to their defaults.
func resetFlags() {
	suggestLimit = 0
	suggestJSON = false
	documentTitle = ""
	documentCategories = nil
	newUser = domain.User{}
	serveAddr = ""
	tuiOwner = ""
	tuiLimit = 20
}

// addUser stores a user directly and rebuilds.
func (e *testEnv) addUser(t *testing.T, id, first, last string) {
	t.Helper()
	require.NoError(t, e.users.SaveUser(context.Background(), domain.User{ID: id, FirstName: first, LastName: last}))
	e.rebuild(t)
}

// addDocument stores a document directly and rebuilds.
func (e *testEnv) addDocument(t *testing.T, doc domain.Document) {
	t.Helper()
	require.NoError(t, e.docs.SaveDocument(context.Background(), &doc))
	e.rebuild(t)
}

func (e *testEnv) rebuild(t *testing.T) {
	t.Helper()
	_, err := e.services.Suggest.Rebuild(context.Background(), domain.RebuildManual)
	require.NoError(t, err)
}

// executeCommand runs the root command and returns everything it printed.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
