package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/addie/internal/app"
	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/importer"
	"github.com/alexanderramin/addie/internal/repository"
)

type importService struct {
	content repository.ContentRepo
}

func NewImportService(content repository.ContentRepo) ImportService {
	return &importService{content: content}
}

func (s *importService) ImportContent(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportContentFromSchema(ctx context.Context, schema *importer.ImportSchema) (*app.ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(_ context.Context, schema *importer.ImportSchema) (*app.ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	content, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	if err := s.content.Put(*content); err != nil {
		return nil, fmt.Errorf("storing project content: %w", err)
	}

	return summarizeContent(content), nil
}

func summarizeContent(content *domain.ProjectContent) *app.ImportResult {
	res := &app.ImportResult{
		Project:          content.Project,
		DesignDocCount:   len(content.DesignDocs),
		MaterialCount:    len(content.Materials),
		HasStyleGuide:    content.StyleGuide != nil,
		HasNeedsAnalysis: content.NeedsAnalysis != nil,
	}
	if o := content.Outline; o != nil {
		res.ModuleCount = len(o.Modules)
		for _, m := range o.Modules {
			res.LessonCount += len(m.Lessons)
			res.ObjectiveCount += len(m.Objectives)
			for _, l := range m.Lessons {
				res.ObjectiveCount += len(l.Objectives)
			}
		}
	}
	for _, d := range content.DesignDocs {
		res.SlideCount += len(d.Slides)
	}
	return res
}
