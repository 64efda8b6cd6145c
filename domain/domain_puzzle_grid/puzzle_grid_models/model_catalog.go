package puzzle_grid_models

// CatalogCandidate 目录搜索返回的候选发行（按相关度排序）
type CatalogCandidate struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	CoverImage string `json:"cover_image"`
	Thumb      string `json:"thumb"`
}

// CatalogContributor 署名条目
type CatalogContributor struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// CatalogImage 发行图片
type CatalogImage struct {
	Type string `json:"type"`
	URI  string `json:"uri"`
}

// CatalogRelease 完整发行记录
type CatalogRelease struct {
	ID           int64                `json:"id"`
	Title        string               `json:"title"`
	Artists      []CatalogContributor `json:"artists"`
	Credits      []CatalogContributor `json:"credits"`
	ExtraArtists []CatalogContributor `json:"extraartists"`
	CoverImage   string               `json:"cover_image"`
	Thumb        string               `json:"thumb"`
	Images       []CatalogImage       `json:"images"`
}

// ContributorNames 汇总三类署名中的全部名称
func (r *CatalogRelease) ContributorNames() []string {
	names := make([]string, 0, len(r.Artists)+len(r.Credits)+len(r.ExtraArtists))
	for _, list := range [][]CatalogContributor{r.Artists, r.Credits, r.ExtraArtists} {
		for _, c := range list {
			names = append(names, c.Name)
		}
	}
	return names
}

// Cover 封面引用：cover_image 优先，其次 thumb，都为空时取 primary 图片
func (r *CatalogRelease) Cover() string {
	if r.CoverImage != "" {
		return r.CoverImage
	}
	if r.Thumb != "" {
		return r.Thumb
	}
	for _, img := range r.Images {
		if img.Type == "primary" {
			return img.URI
		}
	}
	return ""
}
