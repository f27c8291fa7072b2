// Package category contains the Category aggregate: a named grouping of orders
// that carries a denormalized count of its open orders.
package category
