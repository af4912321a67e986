package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/docstore/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)
	require.NotNil(t, manager)
	defer manager.Close()

	// Verify components are initialized
	assert.NotNil(t, manager.Documents())
	assert.NotNil(t, manager.searcher)
	assert.NotNil(t, manager.logger)
}

func TestManager_SaveAndFindById(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)
	defer manager.Close()

	ctx := context.Background()

	t.Run("save assigns id and find returns the document", func(t *testing.T) {
		saved, err := manager.Save(ctx, &core.Document{
			Title:   "Назва документа",
			Content: "Вміст документа",
			Author:  core.Author{Id: "1", Name: "Автор"},
			Created: time.Now().UTC(),
		})
		require.NoError(t, err)
		require.False(t, core.IsBlankId(saved.Id))

		found, err := manager.FindById(ctx, saved.Id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, saved, found)
	})

	t.Run("save preserves a preset id", func(t *testing.T) {
		saved, err := manager.Save(ctx, &core.Document{Id: "preset-id", Title: "Назва"})
		require.NoError(t, err)
		assert.Equal(t, "preset-id", saved.Id)
	})

	t.Run("unknown id finds nothing", func(t *testing.T) {
		found, err := manager.FindById(ctx, "no-such-id")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("nil document fails", func(t *testing.T) {
		_, err := manager.Save(ctx, nil)
		assert.ErrorIs(t, err, core.ErrNilDocument)
	})
}

func TestManager_Search(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)
	defer manager.Close()

	ctx := context.Background()

	for _, title := range []string{"Опис проекта", "Технічне завдання"} {
		_, err := manager.Save(ctx, &core.Document{
			Title:   title,
			Author:  core.Author{Id: "1", Name: "Автор"},
			Created: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	t.Run("empty request returns everything", func(t *testing.T) {
		results, err := manager.Search(ctx, &core.SearchRequest{})
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("title prefix narrows the result", func(t *testing.T) {
		results, err := manager.Search(ctx, &core.SearchRequest{
			TitlePrefixes: []string{"Опис"},
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Опис проекта", results[0].Title)
	})

	t.Run("nil request fails", func(t *testing.T) {
		_, err := manager.Search(ctx, nil)
		assert.ErrorIs(t, err, core.ErrNilRequest)
	})
}

func TestManager_Close(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)
	require.NotNil(t, manager)

	// Close the manager
	err = manager.Close()
	assert.NoError(t, err)
}

func TestManager_FactoryMethods(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)
	require.NotNil(t, manager)
	defer manager.Close()

	t.Run("can create ingestion pipeline", func(t *testing.T) {
		pipeline, err := manager.NewIngestionPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := manager.NewSearcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
	})
}
