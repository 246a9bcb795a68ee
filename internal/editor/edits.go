package editor

import (
	"github.com/ziadkadry99/portfoliai/internal/portfolio"
)

// AddExperience appends a placeholder experience with a fresh id.
func (c *Controller) AddExperience() (portfolio.Experience, Snapshot, error) {
	e := portfolio.NewExperience(portfolio.NewID())
	snap, err := c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		list := portfolio.AppendExperience(doc.Experiences, e)
		return portfolio.Patch{Experiences: &list}, nil
	})
	return e, snap, err
}

// UpdateExperience replaces the experience with the same id.
func (c *Controller) UpdateExperience(e portfolio.Experience) (Snapshot, error) {
	return c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		list, ok := portfolio.ReplaceExperience(doc.Experiences, e)
		if !ok {
			return portfolio.Patch{}, ErrExperienceNotFound
		}
		return portfolio.Patch{Experiences: &list}, nil
	})
}

// RemoveExperience deletes the experience with the given id. An unknown id
// is a no-op.
func (c *Controller) RemoveExperience(id string) (Snapshot, error) {
	return c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		if portfolio.IndexOfExperience(doc.Experiences, id) < 0 {
			return portfolio.Patch{}, nil
		}
		list := portfolio.RemoveExperience(doc.Experiences, id)
		return portfolio.Patch{Experiences: &list}, nil
	})
}

// AddProject appends a placeholder project with a fresh id.
func (c *Controller) AddProject() (portfolio.Project, Snapshot, error) {
	var p portfolio.Project
	snap, err := c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		p = portfolio.NewProject(portfolio.NewID(), len(doc.Projects))
		list := portfolio.AppendProject(doc.Projects, p)
		return portfolio.Patch{Projects: &list}, nil
	})
	return p, snap, err
}

// UpdateProject replaces the project with the same id.
func (c *Controller) UpdateProject(p portfolio.Project) (Snapshot, error) {
	return c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		list, ok := portfolio.ReplaceProject(doc.Projects, p)
		if !ok {
			return portfolio.Patch{}, ErrProjectNotFound
		}
		return portfolio.Patch{Projects: &list}, nil
	})
}

// RemoveProject deletes the project with the given id. An unknown id is a no-op.
func (c *Controller) RemoveProject(id string) (Snapshot, error) {
	return c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		if portfolio.IndexOfProject(doc.Projects, id) < 0 {
			return portfolio.Patch{}, nil
		}
		list := portfolio.RemoveProject(doc.Projects, id)
		return portfolio.Patch{Projects: &list}, nil
	})
}

// AddSkill appends a skill. Empty input is ignored; duplicates are kept.
func (c *Controller) AddSkill(skill string) (Snapshot, error) {
	return c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		if skill == "" {
			return portfolio.Patch{}, nil
		}
		list := portfolio.AppendString(doc.Skills, skill)
		return portfolio.Patch{Skills: &list}, nil
	})
}

// RemoveSkill deletes the skill at index. Project skill tags naming it are
// left in place.
func (c *Controller) RemoveSkill(index int) (Snapshot, error) {
	return c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		if index < 0 || index >= len(doc.Skills) {
			return portfolio.Patch{}, nil
		}
		list := portfolio.RemoveIndex(doc.Skills, index)
		return portfolio.Patch{Skills: &list}, nil
	})
}

// AddBrandKeyword appends a brand keyword. Empty input is ignored.
func (c *Controller) AddBrandKeyword(kw string) (Snapshot, error) {
	return c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		if kw == "" {
			return portfolio.Patch{}, nil
		}
		list := portfolio.AppendString(doc.Profile.BrandKeywords, kw)
		return portfolio.Patch{BrandKeywords: &list}, nil
	})
}

// RemoveBrandKeyword deletes the brand keyword at index.
func (c *Controller) RemoveBrandKeyword(index int) (Snapshot, error) {
	return c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		if index < 0 || index >= len(doc.Profile.BrandKeywords) {
			return portfolio.Patch{}, nil
		}
		list := portfolio.RemoveIndex(doc.Profile.BrandKeywords, index)
		return portfolio.Patch{BrandKeywords: &list}, nil
	})
}

// AddTechnology appends a technology tag to a project. Empty input is ignored.
func (c *Controller) AddTechnology(projectID, tech string) (Snapshot, error) {
	return c.editProject(projectID, func(p *portfolio.Project) bool {
		if tech == "" {
			return false
		}
		p.Technologies = portfolio.AppendString(p.Technologies, tech)
		return true
	})
}

// RemoveTechnology deletes the technology tag at index from a project.
func (c *Controller) RemoveTechnology(projectID string, index int) (Snapshot, error) {
	return c.editProject(projectID, func(p *portfolio.Project) bool {
		if index < 0 || index >= len(p.Technologies) {
			return false
		}
		p.Technologies = portfolio.RemoveIndex(p.Technologies, index)
		return true
	})
}

// ToggleProjectSkill tags the project with skill, or untags it when already tagged.
func (c *Controller) ToggleProjectSkill(projectID, skill string) (Snapshot, error) {
	return c.editProject(projectID, func(p *portfolio.Project) bool {
		p.SkillsTagged = portfolio.ToggleString(p.SkillsTagged, skill)
		return true
	})
}

// SetProfilePicture stores an opaque image reference on the profile.
func (c *Controller) SetProfilePicture(ref string) (Snapshot, error) {
	return c.MergeUpdate(portfolio.Patch{ProfilePictureURL: &ref})
}

// SetProjectImage stores an opaque image reference on a project.
func (c *Controller) SetProjectImage(projectID, ref string) (Snapshot, error) {
	return c.editProject(projectID, func(p *portfolio.Project) bool {
		p.ImageURL = ref
		return true
	})
}

// editProject copies the projects array, lets edit change one element and
// merges the new array. edit returns false to signal no change.
func (c *Controller) editProject(id string, edit func(p *portfolio.Project) bool) (Snapshot, error) {
	return c.Modify(func(doc portfolio.Document) (portfolio.Patch, error) {
		i := portfolio.IndexOfProject(doc.Projects, id)
		if i < 0 {
			return portfolio.Patch{}, ErrProjectNotFound
		}
		list := doc.Projects
		if !edit(&list[i]) {
			return portfolio.Patch{}, nil
		}
		return portfolio.Patch{Projects: &list}, nil
	})
}
