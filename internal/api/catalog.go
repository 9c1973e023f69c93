package api

import (
	"context"
	"net/url"

	"talentia/internal/domain/catalog"
)

func (c *Client) ListTalents(ctx context.Context) ([]catalog.Talent, error) {
	var out []catalog.Talent
	if err := c.get(ctx, "/talents", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListLibraryCategories(ctx context.Context) ([]catalog.LibraryCategory, error) {
	var out []catalog.LibraryCategory
	if err := c.get(ctx, "/library/categories", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListLibraryResources(ctx context.Context) ([]catalog.LibraryResource, error) {
	var out []catalog.LibraryResource
	if err := c.get(ctx, "/library/resources", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCourses(ctx context.Context) ([]catalog.CourseSummary, error) {
	var out []catalog.CourseSummary
	if err := c.get(ctx, "/courses", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCourse(ctx context.Context, courseID string) (*catalog.CourseDetail, error) {
	var out catalog.CourseDetail
	if err := c.get(ctx, "/courses/"+url.PathEscape(courseID), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMentors(ctx context.Context) ([]catalog.Mentor, error) {
	var out []catalog.Mentor
	if err := c.get(ctx, "/mentors", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MyPortfolio(ctx context.Context, token string) (*catalog.PortfolioOverview, error) {
	var out catalog.PortfolioOverview
	if err := c.get(ctx, "/portfolio/me", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
