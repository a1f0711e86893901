package sqlinline

const QInsertQuoteOrder = `--sql 2f6a1d8e-9c41-4f0b-8f1f-6f2f3f6f7a10
insert into quote_orders(id, artwork_type, estimated_price_cents, requires_quote, description, inspiration_images, payload, created_at)
values ($1::uuid, $2::text, $3::bigint, $4::boolean, $5::text, $6::text[], $7::jsonb, now());
`

const QGetQuoteOrder = `--sql 70c3d9ab-55e0-4be3-b0d4-1f4f9a2a6c22
select id, artwork_type, estimated_price_cents, requires_quote, description, inspiration_images, payload, created_at
from quote_orders
where id = $1::uuid;
`

const QListQuoteOrders = `--sql c1b5e2a7-8af2-49d6-9a35-73de6cf0be31
select id, artwork_type, estimated_price_cents, requires_quote, description, inspiration_images, payload, created_at
from quote_orders
order by created_at desc
limit $1::int;
`
