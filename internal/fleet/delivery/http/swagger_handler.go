package http

// CreateCar godoc
// @Summary Register a car
// @Tags Cars
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,model=string,plateNumber=string,status=string} true "Car data"
// @Success 201 {object} object{message=string,data=object}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /api/cars [post]
func (h *CarHandler) CreateCarDoc() {}

// ListCars godoc
// @Summary List cars
// @Description Elevated roles see every car, USER sees their own
// @Tags Cars
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} object{id=int,ownerRef=string,name=string,model=string,plateNumber=string,status=string}
// @Failure 401 {object} object{error=string}
// @Router /api/cars [get]
func (h *CarHandler) ListCarsDoc() {}

// UpdateCar godoc
// @Summary Update a car
// @Tags Cars
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Car ID"
// @Param request body object{name=string,model=string,plateNumber=string,status=string} true "Car data"
// @Success 200 {object} object{message=string,data=object}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/cars/{id} [put]
func (h *CarHandler) UpdateCarDoc() {}

// DeleteCar godoc
// @Summary Delete a car
// @Tags Cars
// @Security BearerAuth
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} object{message=string,data=object}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/cars/{id} [delete]
func (h *CarHandler) DeleteCarDoc() {}
