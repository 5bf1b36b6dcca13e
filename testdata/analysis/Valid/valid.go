package valid

const Name = "valid"
