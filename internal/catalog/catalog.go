// Package catalog serves the static product catalog. Products are a
// read-only data source; carts keep their own snapshot of name and
// price, so edits here never touch persisted cart lines.
package catalog

import "localstore/internal/domain"

var products = []domain.Product{
	{
		ID:          1,
		Name:        "Laptop",
		Price:       999.99,
		Description: "Powerful laptop with high-performance features.",
		Image:       "https://imgs.search.brave.com/dS6CnCuHuN5hBBvHKVUDxJ2VBGKPe41HbhUexg_xNeY/rs:fit:500:0:0/g:ce/aHR0cHM6Ly9jZG4u/dGhld2lyZWN1dHRl/ci5jb20vd3AtY29u/dGVudC9tZWRpYS8y/MDIzLzA2L2xhcHRv/cHN1bmRlcjUwMC0y/MDQ4cHgtYWNlcmFz/cGlyZTNzcGluMTQu/anBn",
	},
	{
		ID:          2,
		Name:        "Smartphone",
		Price:       599.99,
		Description: "The latest smartphone with advanced features.",
		Image:       "https://imgs.search.brave.com/jfVUsQ6-XuLNsxxWLVk77iwmkSfZuGAZs79fU_vAd0U/rs:fit:500:0:0/g:ce/aHR0cHM6Ly9zdDIu/ZGVwb3NpdHBob3Rv/cy5jb20vMTAwMDEy/OC81OTc0L2kvNDUw/L2RlcG9zaXRwaG90/b3NfNTk3NDQ4Mzkt/c3RvY2stcGhvdG8t/Y29sbGVjdGlvbi1v/Zi1tb2Rlcm4tdG91/Y2hzY3JlZW4tc21h/cnRwaG9uZXMuanBn",
	},
	{
		ID:          3,
		Name:        "Headphones",
		Price:       79.99,
		Description: "Premium over-ear headphones with noise-canceling technology.",
		Image:       "https://imgs.search.brave.com/lJic5OrYlHvOdAihT-GOYHu0vV_zHFTvwGLbo9Cw2RA/rs:fit:500:0:0/g:ce/aHR0cHM6Ly90NC5m/dGNkbi5uZXQvanBn/LzA1LzgxLzgxLzM1/LzM2MF9GXzU4MTgx/MzU2Nl9lNHl3ZGJr/VFl2eE1iY0RPTDZl/ang1V2NZZHlTUWVa/ai5qcGc",
	},
	{
		ID:          4,
		Name:        "Wireless Mouse",
		Price:       29.99,
		Description: "Sleek and ergonomic wireless mouse for comfortable use.",
		Image:       "https://imgs.search.brave.com/NMJfxucihWe38ewkOm36HXxKIOxd858_T_sf3TTMVso/rs:fit:500:0:0/g:ce/aHR0cHM6Ly90My5m/dGNkbi5uZXQvanBn/LzA1LzI1LzQ1LzIw/LzM2MF9GXzUyNTQ1/MjA0N19qT1JGZUNx/NHBqQUcwS1FPelhm/YWZkYm5GUloyTEd4/Ry5qcGc",
	},
	{
		ID:          5,
		Name:        "Fitness Tracker",
		Price:       49.99,
		Description: "Track your fitness goals with this advanced fitness tracker.",
		Image:       "https://imgs.search.brave.com/CmUFU7DYzr7yRX1zS9EwVC_BxS_bG_OdCq4n4iIn_Z0/rs:fit:500:0:0/g:ce/aHR0cHM6Ly90My5m/dGNkbi5uZXQvanBn/LzAyLzM4LzIyLzEy/LzM2MF9GXzIzODIy/MTI2MV9QZXFucmVu/aVQ2dlBwY2VrYWVC/T1FqTWRrc0VDYmpa/cS5qcGc",
	},
	{
		ID:          6,
		Name:        "Coffee Maker",
		Price:       89.99,
		Description: "Start your day with the perfect cup of coffee from this coffee maker.",
		Image:       "https://imgs.search.brave.com/5jVOI3xRdOH8kiz1-C1tHis7WCb6Vj-fQ9el9h7lzzA/rs:fit:500:0:0/g:ce/aHR0cHM6Ly9pbWcu/ZnJlZXBpay5jb20v/cHJlbWl1bS1waG90/by9jb2ZmZWUtbWFr/ZXJfMTUyMjkwLTEu/anBnP3NpemU9NjI2/JmV4dD1qcGc",
	},
}

// List returns all catalog products in display order.
func List() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// Get returns the product with the given id.
func Get(id int64) (*domain.Product, error) {
	for _, p := range products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}
