// Package review contains the Review aggregate: an employer's rating of the
// worker who completed an order. Each order has at most one review.
package review
