package client

import "github.com/shiftnotes/shiftnotes-cli/internal/client/models"

func (c *HTTPClient) EPAs() *Resource[models.EPA] {
	return newResource[models.EPA](c, "/epas/")
}

func (c *HTTPClient) EPACategories() *Resource[models.EPACategory] {
	return newResource[models.EPACategory](c, "/epa-categories/")
}

func (c *HTTPClient) CoreCompetencies() *Resource[models.CoreCompetency] {
	return newResource[models.CoreCompetency](c, "/core-competencies/")
}

func (c *HTTPClient) SubCompetencies() *Resource[models.SubCompetency] {
	return newResource[models.SubCompetency](c, "/sub-competencies/")
}

func (c *HTTPClient) SubCompetencyEPAs() *Resource[models.SubCompetencyEPA] {
	return newResource[models.SubCompetencyEPA](c, "/sub-competency-epas/")
}
