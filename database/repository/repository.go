package repository

import (
	bookingRepo "detailify/database/repository/booking"
	contentRepo "detailify/database/repository/content"
)

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the ContentRepository interface and constructor.
type ContentRepository = contentRepo.ContentRepository

var NewMongoContentRepo = contentRepo.NewMongoContentRepo
