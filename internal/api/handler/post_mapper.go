package handler

import (
	"github.com/ashuestate/realty-api/internal/core/domain"
	"github.com/ashuestate/realty-api/internal/core/ports"
)

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Title:     p.Title,
		Price:     p.Price,
		Address:   p.Address,
		City:      p.City,
		Bedroom:   p.Bedroom,
		Bathroom:  p.Bathroom,
		Type:      p.Type,
		Property:  p.Property,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Images:    p.Images,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPostDetailResponse(d *domain.PostDetail) *postDetailResponse {
	if d == nil {
		return nil
	}
	return &postDetailResponse{
		Description: d.Description,
		Utilities:   d.Utilities,
		Pet:         d.Pet,
		Income:      d.Income,
		SizeSqm:     d.SizeSqm,
		School:      d.School,
		Bus:         d.Bus,
		Restaurant:  d.Restaurant,
	}
}

func toPostWithDetailResponse(pd *ports.PostWithDetail) postWithDetailResponse {
	return postWithDetailResponse{
		postResponse: toPostResponse(pd.Post),
		Detail:       toPostDetailResponse(pd.Detail),
	}
}

func toCreatePostInput(req createPostRequest) ports.CreatePostInput {
	return ports.CreatePostInput{
		Title:     req.Title,
		Price:     req.Price,
		Address:   req.Address,
		City:      req.City,
		Bedroom:   req.Bedroom,
		Bathroom:  req.Bathroom,
		Type:      req.Type,
		Property:  req.Property,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Images:    req.Images,
		Detail: ports.PostDetailInput{
			Description: req.Detail.Description,
			Utilities:   req.Detail.Utilities,
			Pet:         req.Detail.Pet,
			Income:      req.Detail.Income,
			SizeSqm:     req.Detail.SizeSqm,
			School:      req.Detail.School,
			Bus:         req.Detail.Bus,
			Restaurant:  req.Detail.Restaurant,
		},
	}
}

func toUpdatePostInput(req updatePostRequest) ports.UpdatePostInput {
	in := ports.UpdatePostInput{
		Post: ports.PostUpdate{
			Title:     req.Title,
			Price:     req.Price,
			Address:   req.Address,
			City:      req.City,
			Bedroom:   req.Bedroom,
			Bathroom:  req.Bathroom,
			Type:      req.Type,
			Property:  req.Property,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
			Images:    req.Images,
		},
	}
	if req.Detail != nil {
		in.Detail = &ports.PostDetailUpdate{
			Description: req.Detail.Description,
			Utilities:   req.Detail.Utilities,
			Pet:         req.Detail.Pet,
			Income:      req.Detail.Income,
			SizeSqm:     req.Detail.SizeSqm,
			School:      req.Detail.School,
			Bus:         req.Detail.Bus,
			Restaurant:  req.Detail.Restaurant,
		}
	}
	return in
}
