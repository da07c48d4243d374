package generate

// JSON schemas embedded into the generation prompts. The model is asked to
// answer with records matching these shapes; every record is still validated
// through the domain factories before it is returned.

const companySchema = `{
  "type": "object",
  "properties": {
    "company_id": {
      "type": "string",
      "pattern": "^[A-Z]{4}[0-9]$",
      "description": "Human readable company ID: 4 uppercase letters followed by 1 digit"
    },
    "company_name": {"type": "string", "description": "Company name"},
    "address_billing": {"$ref": "#/$defs/address", "description": "Company billing address"},
    "address_shipping": {
      "anyOf": [{"$ref": "#/$defs/address"}, {"type": "null"}],
      "description": "Company shipping address, null when same contact has none"
    },
    "phone_number": {"type": "string", "description": "Phone number"},
    "email": {"type": "string", "description": "Email address"},
    "website": {"type": "string", "description": "Website URL"}
  },
  "required": ["company_id", "company_name", "address_billing", "phone_number", "email", "website"],
  "$defs": {
    "address": {
      "type": "object",
      "properties": {
        "address_line1": {"type": "string", "description": "Address line 1, required"},
        "address_line2": {"type": "string", "description": "Address line 2, optional"},
        "city": {"type": "string", "description": "City name"},
        "province": {"type": "string", "description": "Province name"},
        "postal_code": {"type": "string", "description": "Postal code, Canadian format A1A 1A1"},
        "country": {"type": "string", "description": "Country name", "default": "Canada"}
      },
      "required": ["address_line1", "city", "province", "postal_code"]
    }
  }
}`

const lineItemSchema = `{
  "type": "object",
  "properties": {
    "item_sku": {
      "type": "string",
      "pattern": "^[A-Z]{4}[0-9]$",
      "description": "Item SKU: 4 uppercase letters followed by 1 digit"
    },
    "item_info": {"type": "string", "description": "Item description"},
    "quantity": {"type": "integer", "minimum": 1, "description": "Quantity, positive integer"},
    "unit_price": {"type": "number", "minimum": 0, "description": "Unit price, non-negative, 2 decimal places"}
  },
  "required": ["item_sku", "item_info", "quantity", "unit_price"]
}`
