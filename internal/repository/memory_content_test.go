package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentStore_MissingContentIsNil(t *testing.T) {
	store := NewContentStore()
	ctx := context.Background()

	outline, err := store.CourseOutline(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, outline)

	docs, err := store.DesignDocs(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, docs)

	materials, err := store.Materials(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, materials)

	guide, err := store.StyleGuide(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, guide)

	na, err := store.AnalysisReport(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, na)

	_, err = store.Project(ctx, "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestContentStore_PutAndRead(t *testing.T) {
	store := NewContentStore()
	ctx := context.Background()

	outline := testutil.NewTestOutline("p1",
		testutil.NewTestModule("m1", 1, testutil.WithModuleObjectives(
			testutil.NewTestObjective("o1", domain.BloomApply),
		)),
	)
	content := testutil.NewTestContent("p1",
		testutil.WithOutline(outline),
		testutil.WithDesignDocs(testutil.NewTestDesignDoc("d1", "Storyboard", testutil.NewTestSlide(1))),
		testutil.WithStyleGuide(&domain.StyleGuide{ProjectID: "p1", Name: "House", Type: domain.StyleGuideCustom}),
		testutil.WithNeedsAnalysis(&domain.NeedsAnalysis{ProjectID: "p1", MaterialGaps: []string{"lab data"}}),
	)
	require.NoError(t, store.Put(content))

	p, err := store.Project(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Project p1", p.Name)

	gotOutline, err := store.CourseOutline(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, outline, gotOutline)

	docs, err := store.DesignDocs(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Storyboard", docs[0].Title)

	guide, err := store.StyleGuide(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "House", guide.Name)

	na, err := store.AnalysisReport(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"lab data"}, na.MaterialGaps)
}

func TestContentStore_CopyOnRead(t *testing.T) {
	store := NewContentStore()
	ctx := context.Background()

	outline := testutil.NewTestOutline("p1", testutil.NewTestModule("m1", 1, testutil.WithModuleObjectives(
		testutil.NewTestObjective("o1", domain.BloomApply),
	)))
	require.NoError(t, store.Put(testutil.NewTestContent("p1", testutil.WithOutline(outline))))

	// Mutating the caller's value after Put does not reach the store.
	outline.Modules[0].Title = "changed by caller"

	first, err := store.CourseOutline(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Module m1", first.Modules[0].Title)

	// Mutating a returned value does not reach the store either.
	first.Modules[0].Objectives[0].AssessmentAligned = true
	second, err := store.CourseOutline(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, second.Modules[0].Objectives[0].AssessmentAligned)
}

func TestContentStore_MaterialLibrarySharedAcrossProjects(t *testing.T) {
	store := NewContentStore()
	ctx := context.Background()

	shared := testutil.NewTestMaterial("mat-shared", "Shared handbook")
	require.NoError(t, store.Put(testutil.NewTestContent("p1",
		testutil.WithMaterials(shared, testutil.NewTestMaterial("mat-p1", "Only p1")),
	)))
	require.NoError(t, store.Put(testutil.NewTestContent("p2",
		testutil.WithMaterials(shared),
	)))

	p1, err := store.Materials(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, p1, 2)
	assert.Equal(t, "mat-p1", p1[0].ID)
	assert.Equal(t, "mat-shared", p1[1].ID)
	assert.ElementsMatch(t, []string{"p1", "p2"}, p1[1].ProjectIDs)

	p2, err := store.Materials(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, p2, 1)
	assert.Equal(t, "mat-shared", p2[0].ID)
}

func TestContentStore_PutReplacesProjectContent(t *testing.T) {
	store := NewContentStore()
	ctx := context.Background()

	require.NoError(t, store.Put(testutil.NewTestContent("p1",
		testutil.WithOutline(testutil.NewTestOutline("p1")),
	)))
	require.NoError(t, store.Put(testutil.NewTestContent("p1")))

	outline, err := store.CourseOutline(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, outline)
}

func TestContentStore_RejectsInvalidProjectID(t *testing.T) {
	store := NewContentStore()
	err := store.Put(testutil.NewTestContent(""))
	assert.ErrorContains(t, err, "project ID is required")
}

func TestContentStore_PutUnlinksDroppedMaterials(t *testing.T) {
	store := NewContentStore()
	ctx := context.Background()

	shared := testutil.NewTestMaterial("mat-shared", "Shared handbook")
	require.NoError(t, store.Put(testutil.NewTestContent("p1",
		testutil.WithMaterials(shared, testutil.NewTestMaterial("mat-old", "Old handout")),
	)))
	require.NoError(t, store.Put(testutil.NewTestContent("p2",
		testutil.WithMaterials(shared),
	)))

	require.NoError(t, store.Put(testutil.NewTestContent("p1")))

	p1, err := store.Materials(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, p1)

	p2, err := store.Materials(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, p2, 1)
	assert.Equal(t, "mat-shared", p2[0].ID)
	assert.Equal(t, []string{"p2"}, p2[0].ProjectIDs)

	// Relinking p1 to a material it dropped works like a fresh link.
	require.NoError(t, store.Put(testutil.NewTestContent("p1", testutil.WithMaterials(shared))))
	p1, err = store.Materials(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, p1, 1)
	assert.ElementsMatch(t, []string{"p1", "p2"}, p1[0].ProjectIDs)
}
